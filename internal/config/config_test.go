package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.False(t, cfg.Debug)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, PlaceholderOpenAIKey, cfg.OpenAIAPIKey)
	assert.Equal(t, PlaceholderFirecrawlKey, cfg.FirecrawlAPIKey)
	assert.Equal(t, "gpt-4", cfg.Model)
	assert.Equal(t, 2000, cfg.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Temperature, 1e-9)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.False(t, cfg.OpenAIKeyConfigured())
	assert.False(t, cfg.FirecrawlKeyConfigured())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DEBUG", "true")
	t.Setenv("PORT", "9000")
	t.Setenv("OPENAI_API_KEY", "sk-real")
	t.Setenv("FIRECRAWL_API_KEY", "fc-real")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("MAX_TOKENS", "512")
	t.Setenv("TEMPERATURE", "0.2")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg := Load()

	assert.True(t, cfg.Debug)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 512, cfg.MaxTokens)
	assert.InDelta(t, 0.2, cfg.Temperature, 1e-9)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.True(t, cfg.OpenAIKeyConfigured())
	assert.True(t, cfg.FirecrawlKeyConfigured())
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("MAX_TOKENS", "lots")
	t.Setenv("TEMPERATURE", "warm")
	t.Setenv("DEBUG", "maybe")

	cfg := Load()

	assert.Equal(t, 2000, cfg.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Temperature, 1e-9)
	assert.False(t, cfg.Debug)
}
