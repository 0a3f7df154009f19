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

	assert.Equal(t, "ats-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, StoreDriverSupabase, cfg.Store.Driver)
	assert.Equal(t, 30, cfg.HTTP.RequestTimeoutSeconds)
	assert.Equal(t, "*", cfg.HTTP.CORSAllowOrigins)
	assert.InDelta(t, 50, cfg.HTTP.RateLimitRPS, 0.0001)
	assert.Equal(t, 100, cfg.HTTP.RateLimitBurst)
	assert.Equal(t, 256, cfg.HTTP.MaxConcurrent)
	assert.Equal(t, "public", cfg.Supabase.Schema)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Empty(t, cfg.Audit.WebhookURL)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_NAME", "ats-staging")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORE_DRIVER", StoreDriverMemory)
	t.Setenv("HTTP_RATE_LIMIT_RPS", "2.5")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CACHE_TTL_SECONDS", "120")
	t.Setenv("LOG_MAX_BACKUPS", "not-a-number")
	t.Setenv("AUDIT_WEBHOOK_URL", "http://audit.local/hook")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ats-staging", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.InDelta(t, 2.5, cfg.HTTP.RateLimitRPS, 0.0001)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 120*time.Second, cfg.Cache.TTL())
	// unparseable optional numbers fall back to their defaults
	assert.Equal(t, 3, cfg.Logger.MaxBackups)
	assert.Equal(t, "http://audit.local/hook", cfg.Audit.WebhookURL)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Run("redis db", func(t *testing.T) {
		t.Setenv("REDIS_DB", "three")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "REDIS_DB")
	})

	t.Run("rate limit", func(t *testing.T) {
		t.Setenv("HTTP_RATE_LIMIT_RPS", "fast")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP_RATE_LIMIT_RPS")
	})
}

func TestDurations(t *testing.T) {
	assert.Equal(t, 30*time.Second, HTTPConfig{RequestTimeoutSeconds: 30}.RequestTimeout())
	assert.Equal(t, time.Duration(0), HTTPConfig{}.RequestTimeout())
	assert.Equal(t, time.Duration(0), HTTPConfig{RequestTimeoutSeconds: -5}.RequestTimeout())
	assert.Equal(t, time.Minute, CacheConfig{TTLSeconds: 60}.TTL())
	assert.Equal(t, time.Duration(0), CacheConfig{}.TTL())
}
