package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://backend:3001")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://backend:3001", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 2, cfg.Backend.MaxRetries)
	assert.Equal(t, time.Second, cfg.Backend.RetryDelay)
	assert.Equal(t, CacheEngineMemory, cfg.Cache.Engine)
	assert.Equal(t, "areas", cfg.Cache.Segment)
	assert.Equal(t, time.Hour, cfg.Cache.AreasTTL)
	assert.Empty(t, cfg.Backend.ServiceSecret)
	assert.Equal(t, 10, cfg.RateLimit.RequestsPerWindow)
	assert.Equal(t, 1.0, cfg.RateLimit.BurstMultiplier)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://backend:3001")
	t.Setenv("BACKEND_TIMEOUT", "1500")
	t.Setenv("BACKEND_MAX_RETRIES", "4")
	t.Setenv("BACKEND_RETRY_DELAY", "250ms")
	t.Setenv("CACHE_ENGINE", "Redis")
	t.Setenv("CACHE_AREAS_TTL", "30m")
	t.Setenv("RATE_LIMIT_BURST_MULTIPLIER", "2.5")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.Backend.Timeout)
	assert.Equal(t, 4, cfg.Backend.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Backend.RetryDelay)
	assert.Equal(t, CacheEngineRedis, cfg.Cache.Engine)
	assert.Equal(t, 30*time.Minute, cfg.Cache.AreasTTL)
	assert.Equal(t, 2.5, cfg.RateLimit.BurstMultiplier)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoad_RequiresBackendURL(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownEngine(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://backend:3001")
	t.Setenv("CACHE_ENGINE", "memcached")
	_, err := Load()
	assert.Error(t, err)
}

func TestGetDurationEnv_FallsBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "soon")
	assert.Equal(t, time.Minute, getDurationEnv("SOME_TIMEOUT", time.Minute))
}
