package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/app.db", cfg.DBPath)
	assert.Equal(t, "v1", cfg.Version)
	assert.Equal(t, 8000, cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.UptimeInterval)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.CacheEnabled())
	assert.False(t, cfg.GRPCEnabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/items.db")
	t.Setenv("APP_VERSION", "v2.0.1")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("GRPC_PORT", "9001")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("UPTIME_INTERVAL", "1s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/items.db", cfg.DBPath)
	assert.Equal(t, "v2.0.1", cfg.Version)
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, 9001, cfg.GRPCPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, time.Second, cfg.UptimeInterval)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.True(t, cfg.CacheEnabled())
	assert.True(t, cfg.GRPCEnabled())
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "HTTP_PORT", "http"},
		{"port out of range", "HTTP_PORT", "70000"},
		{"negative grpc port", "GRPC_PORT", "-1"},
		{"grpc port clashes", "GRPC_PORT", "8000"},
		{"bad log level", "LOG_LEVEL", "trace"},
		{"zero interval", "UPTIME_INTERVAL", "0s"},
		{"bad duration", "SHUTDOWN_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidateCacheSettings(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "0s")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty db path", func(c *Config) { c.DBPath = "" }},
		{"empty version", func(c *Config) { c.Version = "" }},
		{"zero shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }},
		{"cache without pool", func(c *Config) {
			c.Redis.Addr = "localhost:6379"
			c.Redis.PoolSize = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
