package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all client configuration.
type Config struct {
	Tracing TracingConfig
	Logging LogConfig
}

// TracingConfig holds tracing-core configuration. The sampling decision
// itself is the host's call; what lives here is the capacity policy the
// environment hands the core.
type TracingConfig struct {
	Enabled  bool `envconfig:"PULSE_TRACING_ENABLED" default:"true"`
	MaxSpans int  `envconfig:"PULSE_TRACE_MAX_SPANS" default:"1000"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"PULSE_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"PULSE_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Tracing: TracingConfig{
			Enabled:  true,
			MaxSpans: 1000,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
