// Package cache stores computed gap reports in Redis, keyed by a hash of their inputs.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/resume-gap/internal/extraction"
	"github.com/jonathan/resume-gap/internal/matching"
	"github.com/jonathan/resume-gap/internal/types"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every key written by ReportCache.
const KeyPrefix = "resume-gap:report:"

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// ReportCache caches GapReports in Redis.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New wraps an existing client. A zero ttl stores entries without expiry.
func New(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

// Connect creates a client for opts and verifies it with PING.
func Connect(ctx context.Context, opts Options) (*ReportCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return New(client, opts.TTL), nil
}

// Key derives the cache key for one analysis request. Identical inputs,
// options and section mode always produce the same key.
func Key(resumeText, jobText string, opts extraction.Options, mode matching.SectionMode) string {
	payload, _ := json.Marshal(struct {
		Resume  string             `json:"resume"`
		Job     string             `json:"job"`
		Options extraction.Options `json:"options"`
		Mode    string             `json:"mode"`
	}{resumeText, jobText, opts, string(mode)})

	sum := sha256.Sum256(payload)
	return KeyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached report for key. A miss is (nil, false, nil).
func (c *ReportCache) Get(ctx context.Context, key string) (*types.GapReport, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached report: %w", err)
	}

	var report types.GapReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached report: %w", err)
	}
	return &report, true, nil
}

// Set stores report under key with the configured TTL.
func (c *ReportCache) Set(ctx context.Context, key string, report *types.GapReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}
	return nil
}

// Delete removes key from the cache.
func (c *ReportCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Ping checks the connection.
func (c *ReportCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (c *ReportCache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
