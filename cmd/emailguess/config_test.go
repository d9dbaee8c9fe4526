package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emailguess/pkg/config"
)

func TestConfigDefaults(t *testing.T) {
	cfg, err := config.Parse[Config]()
	require.NoError(t, err)

	assert.Equal(t, "mx", cfg.Finder.Checker)
	assert.Equal(t, 4, cfg.Finder.Concurrency)
	assert.Equal(t, 5*time.Second, cfg.Finder.CheckTimeout)
	assert.Equal(t, "invalid", cfg.Finder.Unavailable)
	assert.True(t, cfg.Finder.FallbackMX)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 10, cfg.Throttle.Capacity)
	assert.Equal(t, 10, cfg.RateLimit.Capacity)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.False(t, cfg.Redis.Enabled())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("EMAILGUESS_CHECKER", "api")
	t.Setenv("EMAILGUESS_API_ENDPOINT", "https://verify.example.com/v1/check")
	t.Setenv("EMAILGUESS_THROTTLE_CAPACITY", "2")
	t.Setenv("EMAILGUESS_THROTTLE_REFILL_INTERVAL", "10s")
	t.Setenv("HTTP_RATE_LIMIT_CAPACITY", "50")
	t.Setenv("EMAILGUESS_MX_TIMEOUT", "1s")

	cfg, err := config.Parse[Config]()
	require.NoError(t, err)

	assert.Equal(t, "api", cfg.Finder.Checker)
	assert.Equal(t, "https://verify.example.com/v1/check", cfg.API.Endpoint)
	assert.Equal(t, 2, cfg.Throttle.Capacity)
	assert.Equal(t, 10*time.Second, cfg.Throttle.RefillInterval)
	assert.Equal(t, 50, cfg.RateLimit.Capacity)
	assert.Equal(t, time.Second, cfg.MX.Timeout)
}

func TestEnvFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("EMAILGUESS_CHECKER=syntax\n"), 0o600))
	// godotenv never overrides variables that are already set.
	t.Setenv("EMAILGUESS_CHECKER", "")
	require.NoError(t, os.Unsetenv("EMAILGUESS_CHECKER"))

	out, _, err := run(t, nil, "", "--env-file", path, "find", "-d", "corp.io", "John Doe")
	require.NoError(t, err)
	assert.Contains(t, out, "john.doe@corp.io")

	_, _, err = run(t, nil, "", "--env-file", filepath.Join(t.TempDir(), "missing.env"), "styles")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
