package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("TRASH_RETENTION_DAYS", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, "openai", cfg.AIProvider)
	assert.Equal(t, 30, cfg.TrashRetentionDays)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("API_ENVIRONMENT", "production")
	t.Setenv("AI_PROVIDER", "anthropic")
	t.Setenv("AI_TEMPERATURE", "0.9")
	t.Setenv("JOBS_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("CSP_CONNECT_SOURCES", "https://exports.example")

	cfg := Load()

	assert.Equal(t, "9090", cfg.APIPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "anthropic", cfg.AIProvider)
	assert.InDelta(t, 0.9, cfg.AITemperature, 1e-9)
	assert.False(t, cfg.JobsEnabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, []string{"https://exports.example"}, cfg.CSPConnectSources)
}

func TestGetEnvHelpers_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_BOOL", "maybe")
	t.Setenv("X_FLOAT", "1.2.3")
	t.Setenv("X_SLICE", " , ")

	assert.Equal(t, 5, getEnvAsInt("X_INT", 5))
	assert.True(t, getEnvAsBool("X_BOOL", true))
	assert.InDelta(t, 0.5, getEnvAsFloat("X_FLOAT", 0.5), 1e-9)
	assert.Equal(t, []string{"d"}, getEnvAsSlice("X_SLICE", []string{"d"}))
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "Mars/Olympus"}
	assert.Equal(t, "UTC", cfg.Location().String())

	cfg.Timezone = "UTC"
	assert.Equal(t, "UTC", cfg.Location().String())
}
