// Package config provides configuration loading and validation for the
// service: server settings, database URL, and LLM provider selection.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the service configuration. Values come from environment
// variables; cobra flags may override the port.
type Config struct {
	Port        int
	DatabaseURL string

	// LLM settings
	Provider string // "gemini" (default) or "openai"
	APIKey   string

	// Generation call timeouts in seconds. Zero keeps the adapter defaults.
	QuestionTimeoutSecs   int
	AssessmentTimeoutSecs int
	EvaluationTimeoutSecs int
}

// Load builds a Config from environment variables.
// DATABASE_URL and LLM_API_KEY are required.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        8080,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Provider:    os.Getenv("LLM_PROVIDER"),
		APIKey:      os.Getenv("LLM_API_KEY"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	for _, v := range []struct {
		env  string
		dest *int
	}{
		{"QUESTION_TIMEOUT_SECS", &cfg.QuestionTimeoutSecs},
		{"ASSESSMENT_TIMEOUT_SECS", &cfg.AssessmentTimeoutSecs},
		{"EVALUATION_TIMEOUT_SECS", &cfg.EvaluationTimeoutSecs},
	} {
		if s := os.Getenv(v.env); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %v", v.env, err)
			}
			*v.dest = n
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: DATABASE_URL is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("config error: LLM_API_KEY is required")
	}
	switch c.Provider {
	case "", "gemini", "openai":
	default:
		return fmt.Errorf("config error: unknown LLM provider %q", c.Provider)
	}
	if c.QuestionTimeoutSecs < 0 || c.AssessmentTimeoutSecs < 0 || c.EvaluationTimeoutSecs < 0 {
		return fmt.Errorf("config error: timeouts must be non-negative")
	}
	return nil
}
