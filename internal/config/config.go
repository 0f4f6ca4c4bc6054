package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the task automator service.
// Environment variables are parsed from the TASK_AUTOMATOR_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8000"`

	// Completion service configuration
	CompletionProvider string `envconfig:"COMPLETION_PROVIDER" default:"openai"`
	CompletionModel    string `envconfig:"COMPLETION_MODEL" default:"gpt-4o-mini"`

	// OpenAI-compatible endpoint settings (used when provider is "openai")
	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY" default:""`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`

	// Ollama settings (used when provider is "ollama")
	OllamaURL string `envconfig:"OLLAMA_URL" default:"http://localhost:11434"`

	// Background upstream health probing
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
}

// ResolveDefaults validates the completion provider selection and its
// credentials.
func (c *Config) ResolveDefaults() error {
	allowed := map[string]bool{"openai": true, "ollama": true}
	if !allowed[c.CompletionProvider] {
		return fmt.Errorf("unsupported COMPLETION_PROVIDER: %s", c.CompletionProvider)
	}
	if c.CompletionProvider == "openai" && c.OpenAIAPIKey == "" {
		return fmt.Errorf("TASK_AUTOMATOR_OPENAI_API_KEY is required when COMPLETION_PROVIDER is openai")
	}
	if c.CompletionModel == "" {
		return fmt.Errorf("COMPLETION_MODEL must not be empty")
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Environment variables should be prefixed with TASK_AUTOMATOR_
// Example: TASK_AUTOMATOR_HTTP_PORT, TASK_AUTOMATOR_COMPLETION_MODEL
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("TASK_AUTOMATOR", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("completion_provider", cfg.CompletionProvider).
		Str("completion_model", cfg.CompletionModel).
		Str("openai_key_present", func() string {
			if cfg.OpenAIAPIKey != "" {
				return "true"
			}
			return "false"
		}()).
		Str("ollama_url", cfg.OllamaURL).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing. It selects the
// ollama provider so no credential is needed.
func NewForTesting() *Config {
	return &Config{
		Environment:               EnvTesting,
		HTTPPort:                  8000,
		CompletionProvider:        "ollama",
		CompletionModel:           "llama3",
		OllamaURL:                 "http://localhost:11434",
		HealthIntervalSeconds:     30,
		HealthProbeTimeoutSeconds: 2,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
