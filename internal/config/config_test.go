package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_CONNECTION_STRING", "")
	t.Setenv("GUIDANCE_CITATION_LIMIT", "not-a-number")

	cfg := Load()

	assert.Equal(t, "3000", cfg.App.Port)
	assert.False(t, cfg.UsesDatabase())
	assert.Equal(t, 5, cfg.Guidance.CitationLimit)
	assert.Equal(t, 30*time.Second, cfg.Guidance.GenerationTimeout)
	assert.Equal(t, time.Hour, cfg.Guidance.RecordTTL)
	assert.Equal(t, uint(1), cfg.Ai.Retries)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost/craft")
	t.Setenv("GUIDANCE_CITATION_LIMIT", "8")
	t.Setenv("GUIDANCE_GENERATION_TIMEOUT", "5")
	t.Setenv("GUIDANCE_RECORD_TTL", "15")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("LLM_RETRIES", "-3")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.UsesDatabase())
	assert.Equal(t, 8, cfg.Guidance.CitationLimit)
	assert.Equal(t, 5*time.Second, cfg.Guidance.GenerationTimeout)
	assert.Equal(t, 15*time.Minute, cfg.Guidance.RecordTTL)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, uint(1), cfg.Ai.Retries)
}
