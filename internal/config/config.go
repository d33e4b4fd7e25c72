package config

import (
	"os"
	"strconv"
	"time"
)

// HintDefaults are the placeholder strings substituted into the user prompt
// when the dashboard does not supply a duration/genre/energy hint. They are
// configuration, not inline literals, so the prompt wording can be tuned
// without touching the assembler.
type HintDefaults struct {
	Duration string
	Genre    string
	Energy   string
}

// Config holds the application configuration
type Config struct {
	// Environment
	Environment string
	Port        string

	// Database
	DatabaseURL string

	// LLM API Keys
	OpenAIAPIKey string // OpenAI API key for GPT models
	GeminiAPIKey string // Google Gemini API key

	// Generation behavior
	ChatModel         string        // Default model for chat + schedule generation
	ModelTimeout      time.Duration // Upper bound on a single model call
	CatalogFetchLimit int           // Max candidate tracks pulled from the library
	HintDefaults      HintDefaults

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse

	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "gateway": Trust X-User-* headers from the station gateway
	AuthMode string
}

const (
	defaultModelTimeout      = 60 * time.Second
	defaultCatalogFetchLimit = 1000
)

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		ChatModel:         getEnv("CHAT_MODEL", "gpt-4o-mini"),
		ModelTimeout:      getDurationEnv("MODEL_TIMEOUT", defaultModelTimeout),
		CatalogFetchLimit: getIntEnv("CATALOG_FETCH_LIMIT", defaultCatalogFetchLimit),
		HintDefaults: HintDefaults{
			Duration: getEnv("HINT_DEFAULT_DURATION", "not specified"),
			Genre:    getEnv("HINT_DEFAULT_GENRE", "Any"),
			Energy:   getEnv("HINT_DEFAULT_ENERGY", "Mixed"),
		},
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:   getEnv("LANGFUSE_ENABLED", "false") == "true",
		AuthMode:          getEnv("AUTH_MODE", "none"), // Default to no auth for self-hosted
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// IsGatewayMode returns true if running behind the station gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}
