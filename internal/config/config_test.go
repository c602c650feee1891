package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// No config.yaml in the package directory, so defaults apply.
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Addr)
	assert.Equal(t, "8080", cfg.Server.Port)

	assert.Empty(t, cfg.Generation.Provider, "templated mode by default")
	assert.Equal(t, 30*time.Second, cfg.Generation.Timeout)
	assert.Equal(t, 3, cfg.Generation.MaxRetries)
	assert.Equal(t, time.Second, cfg.Generation.BaseDelay)

	assert.Equal(t, 4000, cfg.Query.MaxLength)
	assert.Equal(t, 5, cfg.Query.DefaultResults)

	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 30, cfg.RateLimit.MaxRequests)

	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)

	assert.True(t, cfg.Guardrails.Enabled)
	assert.False(t, cfg.GitHub.Enabled)
}
