package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 1000, cfg.Tracing.MaxSpans)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PULSE_TRACING_ENABLED", "false")
	t.Setenv("PULSE_TRACE_MAX_SPANS", "25")
	t.Setenv("PULSE_LOG_LEVEL", "debug")
	t.Setenv("PULSE_LOG_DEV", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 25, cfg.Tracing.MaxSpans)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	t.Setenv("PULSE_TRACE_MAX_SPANS", "not-a-number")

	cfg := LoadOrDefault()

	assert.Equal(t, Default(), cfg)
}
