// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-gap/internal/extraction"
	"github.com/jonathan/resume-gap/internal/matching"
	"github.com/jonathan/resume-gap/internal/server/ratelimit"
)

const (
	// EnvPrefix prefixes every environment override, e.g. RESUME_GAP_SERVER_PORT.
	EnvPrefix = "RESUME_GAP"
	// DefaultFileName is looked up in the working directory when no file is given.
	DefaultFileName = "resume-gap"
)

// Config is the full application configuration.
type Config struct {
	Log        LogConfig          `mapstructure:"log"`
	Server     ServerConfig       `mapstructure:"server"`
	Database   DatabaseConfig     `mapstructure:"database"`
	Redis      RedisConfig        `mapstructure:"redis"`
	Taxonomy   TaxonomyConfig     `mapstructure:"taxonomy"`
	Extraction ExtractionConfig   `mapstructure:"extraction"`
	Matching   MatchingConfig     `mapstructure:"matching"`
	RateLimit  ratelimit.Settings `mapstructure:"rate_limit"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

// DatabaseConfig configures report persistence. An empty URL disables it.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// RedisConfig configures the report cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db" validate:"min=0"`
	TTL      time.Duration `mapstructure:"ttl" validate:"gte=0"`
}

// TaxonomyConfig selects the taxonomy file. An empty Path uses the embedded table.
type TaxonomyConfig struct {
	Path string `mapstructure:"path"`
}

type ExtractionConfig struct {
	RemoveDigits   bool `mapstructure:"remove_digits"`
	Lowercase      bool `mapstructure:"lowercase"`
	ExtractPhrases bool `mapstructure:"extract_phrases"`
	MinLength      int  `mapstructure:"min_length" validate:"min=1"`
	// Tagger selects the NLP tagger: "prose" or "none" (heuristics only).
	Tagger string `mapstructure:"tagger" validate:"oneof=prose none"`
}

// Options converts the section into extraction options.
func (c ExtractionConfig) Options() extraction.Options {
	return extraction.Options{
		RemoveDigits:   c.RemoveDigits,
		Lowercase:      c.Lowercase,
		ExtractPhrases: c.ExtractPhrases,
		MinLength:      c.MinLength,
	}
}

type MatchingConfig struct {
	SectionMode string `mapstructure:"section_mode" validate:"oneof=to-end bounded"`
}

// Mode returns the configured severity section mode.
func (c MatchingConfig) Mode() matching.SectionMode {
	return matching.SectionMode(c.SectionMode)
}

func setDefaults(v *viper.Viper) {
	defaults := extraction.DefaultOptions()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 24*time.Hour)
	v.SetDefault("taxonomy.path", "")
	v.SetDefault("extraction.remove_digits", defaults.RemoveDigits)
	v.SetDefault("extraction.lowercase", defaults.Lowercase)
	v.SetDefault("extraction.extract_phrases", defaults.ExtractPhrases)
	v.SetDefault("extraction.min_length", defaults.MinLength)
	v.SetDefault("extraction.tagger", "prose")
	v.SetDefault("matching.section_mode", string(matching.SectionToEnd))
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.default_limit", 1000)
	v.SetDefault("rate_limit.default_window", time.Minute)
	v.SetDefault("rate_limit.whitelist", []string{})
	v.SetDefault("rate_limit.blacklist", []string{})
}

// New returns a viper instance with defaults and environment overrides wired.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from path, or from resume-gap.yaml in the working
// directory when path is empty (a missing default file is not an error).
// Environment variables override file values.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper unmarshals and validates configuration from v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration with every default applied.
func Default() *Config {
	cfg, err := FromViper(New())
	if err != nil {
		// Defaults are constants; failing here is a programming error.
		panic(err)
	}
	return cfg
}

var validate = validator.New()

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
