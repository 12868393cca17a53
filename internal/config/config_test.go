package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("EVDS_API_KEY", "user_api_key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "user_api_key", cfg.APIKey)
	assert.Equal(t, "https://evds2.tcmb.gov.tr", cfg.BaseURL)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("EVDS_API_KEY", "user_api_key")
	t.Setenv("EVDS_BASE_URL", "http://localhost:8080")
	t.Setenv("EVDS_FORMAT", "xml")
	t.Setenv("EVDS_HTTP_TIMEOUT", "5s")
	t.Setenv("EVDS_LOG_LEVEL", "debug")
	t.Setenv("EVDS_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "xml", cfg.Format)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestValidateRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base URL", func(c *Config) { c.BaseURL = "" }},
		{"zero timeout", func(c *Config) { c.HTTPTimeout = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"bad log format", func(c *Config) { c.LogFormat = "pretty" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				BaseURL:     "https://evds2.tcmb.gov.tr",
				Format:      "json",
				HTTPTimeout: 30 * time.Second,
				LogLevel:    "info",
				LogFormat:   "text",
			}
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
