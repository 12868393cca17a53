// Package config loads the client and CLI settings from the environment.
// Only the outer surfaces use it; the request-construction core itself
// takes fully-constructed values and reads no environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every variable, e.g. EVDS_API_KEY.
const envPrefix = "evds"

// Config carries the process-level settings for the CLI and the HTTP
// transport.
type Config struct {
	// APIKey is the EVDS access token. Required.
	APIKey string `envconfig:"API_KEY"`

	// BaseURL is the service root.
	BaseURL string `envconfig:"BASE_URL" default:"https://evds2.tcmb.gov.tr"`

	// Format selects the response representation: json, xml or csv.
	Format string `envconfig:"FORMAT" default:"json"`

	// HTTPTimeout bounds each request.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is one of text, json.
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded settings for consistency. The API key itself
// is validated later by access.NewConfig; here only the ancillary settings
// are checked so a misconfigured process fails at startup.
func (c *Config) Validate() error {
	var problems []string

	if c.BaseURL == "" {
		problems = append(problems, "base URL must not be empty")
	}
	if c.HTTPTimeout <= 0 {
		problems = append(problems, "http timeout must be positive")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log level %q must be one of: debug, info, warn, error", c.LogLevel))
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("log format %q must be one of: text, json", c.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation errors:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
