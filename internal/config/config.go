// Package config provides environment configuration for the API server.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Placeholder credentials; /health reports whether they are still in effect.
const (
	PlaceholderOpenAIKey    = "your-openai-api-key"
	PlaceholderFirecrawlKey = "your-firecrawl-api-key"
)

// Config holds all configuration for the application.
type Config struct {
	// Server settings
	Debug              bool
	Host               string
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration

	// Completion provider settings
	OpenAIAPIKey    string
	AnthropicAPIKey string
	DefaultLLM      string
	Model           string
	MaxTokens       int
	Temperature     float64

	// Research provider settings
	FirecrawlAPIKey string

	// CORS
	CORSOrigins []string

	// Rate limiting
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Logging
	LogLevel string

	// Tracing
	TracingEndpoint string
	TracingEnabled  bool
}

// Load reads configuration from the environment, after loading a .env file
// if one is present in the working directory.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		// Server
		Debug:              getBoolEnv("DEBUG", false),
		Host:               getEnv("HOST", "0.0.0.0"),
		Port:               getEnv("PORT", "8000"),
		ServerReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
		ServerWriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 120*time.Second),

		// Completion provider
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", PlaceholderOpenAIKey),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		DefaultLLM:      getEnv("DEFAULT_LLM", "openai"),
		Model:           getEnv("OPENAI_MODEL", "gpt-4"),
		MaxTokens:       getIntEnv("MAX_TOKENS", 2000),
		Temperature:     getFloatEnv("TEMPERATURE", 0.7),

		// Research provider
		FirecrawlAPIKey: getEnv("FIRECRAWL_API_KEY", PlaceholderFirecrawlKey),

		// CORS
		CORSOrigins: getListEnv("CORS_ORIGINS", []string{"http://localhost:3000"}),

		// Rate limiting
		RateLimitRequests: getIntEnv("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),

		// Tracing
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4318"),
		TracingEnabled:  getBoolEnv("TRACING_ENABLED", false),
	}
}

// OpenAIKeyConfigured reports whether a real completion API key is set.
func (c *Config) OpenAIKeyConfigured() bool {
	return c.OpenAIAPIKey != "" && c.OpenAIAPIKey != PlaceholderOpenAIKey
}

// FirecrawlKeyConfigured reports whether a real research API key is set.
func (c *Config) FirecrawlKeyConfigured() bool {
	return c.FirecrawlAPIKey != "" && c.FirecrawlAPIKey != PlaceholderFirecrawlKey
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
