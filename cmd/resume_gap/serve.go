package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-gap/internal/cache"
	"github.com/jonathan/resume-gap/internal/db"
	"github.com/jonathan/resume-gap/internal/server"
	"github.com/jonathan/resume-gap/internal/server/ratelimit"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: "Start an HTTP server exposing /extract, /match, /gap and /reports. " +
		"Reports are cached in Redis and persisted in PostgreSQL when those are configured.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	port := a.cfg.Server.Port
	if servePort > 0 {
		port = servePort
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	cfg := server.Config{
		Port:        port,
		Analyzer:    a.analyzer,
		SectionMode: a.cfg.Matching.Mode(),
		RateLimit:   ratelimit.NewConfig(a.cfg.RateLimit),
		Logger:      a.logger,
		Registry:    registry,
	}

	if url := a.cfg.Database.URL; url != "" {
		database, err := db.Connect(ctx, url)
		if err != nil {
			return err
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
		cfg.Store = database
		a.logger.Info("report storage enabled")
	} else {
		a.logger.Info("report storage disabled; /reports will return STORAGE_UNAVAILABLE")
	}

	if addr := a.cfg.Redis.Addr; addr != "" {
		reportCache, err := cache.Connect(ctx, cache.Options{
			Addr:     addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
			TTL:      a.cfg.Redis.TTL,
		})
		if err != nil {
			// The cache is optional; serve without it.
			a.logger.Warn("report cache unavailable", zap.String("addr", addr), zap.Error(err))
		} else {
			defer func() { _ = reportCache.Close() }()
			cfg.Cache = reportCache
			a.logger.Info("report cache enabled", zap.String("addr", addr), zap.Duration("ttl", a.cfg.Redis.TTL))
		}
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start(ctx)
}
