package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kongbank/accounts/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ACCOUNTS_ENV", "production")
	t.Setenv("ACCOUNTS_SERVER_PORT", "9090")
	t.Setenv("ACCOUNTS_RATE_LIMIT_MAX_REQUESTS", "5")
	t.Setenv("ACCOUNTS_LOG_LEVEL", "debug")

	cfg, err := config.Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
	assert.Equal(t, "debug", cfg.Log.Level)
}
