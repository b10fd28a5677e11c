package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.Equal(t, "http://localhost:5000/api", cfg.BaseURL)
	assert.Equal(t, 15000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.False(t, cfg.LogCalls)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ARBEIT_API_BASE_URL", "https://crm.example.com/api")
	t.Setenv("ARBEIT_API_TIMEOUT_MS", "2500")
	t.Setenv("ARBEIT_API_MAX_RETRIES", "0")
	t.Setenv("ARBEIT_API_LOG_CALLS", "true")

	cfg := LoadConfig()
	assert.Equal(t, "https://crm.example.com/api", cfg.BaseURL)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.True(t, cfg.LogCalls)
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("ARBEIT_API_TIMEOUT_MS", "not-a-number")
	t.Setenv("ARBEIT_API_MAX_RETRIES", "-2")

	cfg := LoadConfig()
	assert.Equal(t, 15000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}
