// Package config loads the host configuration from environment
// variables, with an optional .env file for local runs.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Server
	Port     int
	LogLevel string

	// External collaborators
	WebhookURLPF string
	WebhookURLPJ string
	PDFAPIURL    string
	PDFAPIKey    string

	// Storage
	HistoryDBPath string

	// HTTP client
	HTTPTimeout time.Duration

	// Resilience
	MaxRetries     int
	InitialBackoff time.Duration
}

// Load reads configuration from environment variables with defaults.
// A .env file in the working directory is loaded first when present;
// real environment variables take precedence.
func Load() *Config {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	return &Config{
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		WebhookURLPF: getEnv("WEBHOOK_URL_PF", ""),
		WebhookURLPJ: getEnv("WEBHOOK_URL_PJ", ""),
		PDFAPIURL:    getEnv("PDF_API_URL", ""),
		PDFAPIKey:    getEnv("PDF_API_KEY", ""),

		HistoryDBPath: getEnv("HISTORY_DB_PATH", "docgen-history.db"),

		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 10*time.Second),

		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		InitialBackoff: getEnvDuration("INITIAL_BACKOFF", 100*time.Millisecond),
	}
}

// WebhookURL returns the delivery URL for a contract party kind. PJ has
// its own endpoint; everything else goes to the PF endpoint.
func (c *Config) WebhookURL(partyKind string) string {
	if partyKind == "PJ" {
		return c.WebhookURLPJ
	}
	return c.WebhookURLPF
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
