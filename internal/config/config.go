package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the item service
type Config struct {
	// Server configuration
	HTTPPort int    `env:"HTTP_PORT" envDefault:"8000"`
	GRPCPort int    `env:"GRPC_PORT" envDefault:"0"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Application identity
	Version string `env:"APP_VERSION" envDefault:"v1"`

	// Storage configuration
	DBPath string `env:"DB_PATH" envDefault:"/data/app.db"`

	// Redis cache configuration
	Redis RedisConfig

	// Background tasks
	UptimeInterval time.Duration `env:"UPTIME_INTERVAL" envDefault:"5s"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// RedisConfig holds the optional Redis item cache configuration
type RedisConfig struct {
	// Addr enables the cache tier when set
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASS"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`

	PoolSize    int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	// 0 disables the gRPC health server
	if c.GRPCPort < 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("invalid gRPC port: %d", c.GRPCPort)
	}
	if c.GRPCPort == c.HTTPPort {
		return fmt.Errorf("gRPC port must differ from HTTP port: %d", c.GRPCPort)
	}

	if c.DBPath == "" {
		return fmt.Errorf("database path is required")
	}
	if c.Version == "" {
		return fmt.Errorf("app version is required")
	}

	if c.UptimeInterval <= 0 {
		return fmt.Errorf("uptime interval must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}

	if c.CacheEnabled() {
		if c.Redis.PoolSize < 1 {
			return fmt.Errorf("redis pool size must be at least 1")
		}
		if c.Redis.CacheTTL <= 0 {
			return fmt.Errorf("cache TTL must be positive")
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// CacheEnabled reports whether the Redis item cache is configured
func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}

// GRPCEnabled reports whether the gRPC health server should run
func (c *Config) GRPCEnabled() bool {
	return c.GRPCPort != 0
}
