// Package config handles application configuration from environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration.
type Config struct {
	// ListenAddr is the HTTP listen address of the gateway.
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":3000"`

	Redis  RedisConfig
	Vendor VendorConfig

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogPretty enables human-readable console output instead of JSON.
	LogPretty bool `env:"LOG_PRETTY" envDefault:"false"`
}

// RedisConfig holds cache backend connection settings.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// VendorConfig holds upstream pricing API settings. The API key is
// optional: without one the client still attempts calls on public-tier
// access.
type VendorConfig struct {
	BaseURL string        `env:"PPT_BASE_URL" envDefault:"https://www.pokemonpricetracker.com/api/v2"`
	APIKey  string        `env:"PPT_API_KEY"`
	Timeout time.Duration `env:"PPT_TIMEOUT" envDefault:"30s"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that env tags cannot express.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("LISTEN_ADDR must not be empty")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR must not be empty")
	}
	if c.Vendor.BaseURL == "" {
		return fmt.Errorf("PPT_BASE_URL must not be empty")
	}
	if c.Vendor.Timeout <= 0 {
		return fmt.Errorf("PPT_TIMEOUT must be positive, got %s", c.Vendor.Timeout)
	}
	return nil
}
