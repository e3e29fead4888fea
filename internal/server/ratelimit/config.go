package ratelimit

import (
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Settings is the user-facing subset of Config, as loaded from the application config.
type Settings struct {
	Enabled       bool          `mapstructure:"enabled"`
	DefaultLimit  int           `mapstructure:"default_limit" validate:"min=0"`
	DefaultWindow time.Duration `mapstructure:"default_window" validate:"gte=0"`
	Whitelist     []string      `mapstructure:"whitelist"`
	Blacklist     []string      `mapstructure:"blacklist"`
}

// NewConfig builds a limiter Config from settings, using DefaultEndpointConfigs.
func NewConfig(s Settings) *Config {
	if !s.Enabled {
		return &Config{Enabled: false}
	}

	limit := s.DefaultLimit
	if limit <= 0 {
		limit = 1000
	}
	window := s.DefaultWindow
	if window <= 0 {
		window = time.Minute
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    limit,
		DefaultWindow:   window,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       ipSet(s.Whitelist),
		Blacklist:       ipSet(s.Blacklist),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Full analysis: two extractions plus matching per request
		{Path: "/gap", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},

		{Path: "/extract", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/match", Method: "POST", Limit: 300, Window: time.Minute, Burst: 50},

		{Path: "/reports/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},

		// Reads use the default limit; /health and /metrics are unlimited (see MatchEndpoint)
	}
}

// ipSet turns a list of addresses into a lookup set, ignoring blanks.
func ipSet(ips []string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range ips {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
