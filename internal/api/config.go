package api

import (
	"os"
	"strconv"
)

// Config holds all configuration for the REST client.
type Config struct {
	BaseURL    string
	TimeoutMs  int
	MaxRetries int // extra attempts on connection errors, writes included
	LogCalls   bool
}

// DefaultConfig returns a Config with sensible defaults pointing at a
// local backend.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:5000/api",
		TimeoutMs:  15000,
		MaxRetries: 1,
		LogCalls:   false,
	}
}

// LoadConfig reads client configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ARBEIT_API_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("ARBEIT_API_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ARBEIT_API_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("ARBEIT_API_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
