package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
	"os"
	"time"
)

type Config struct {
	AppEnv   string
	LogLevel string

	// DatabaseURL selects the Postgres catalog; empty means the built-in catalog.
	DatabaseURL string

	// APIBaseURL is the remote shop API; empty disables product listing.
	APIBaseURL string
	APITimeout time.Duration

	Currency currency.Unit
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("godotenv.Load: %w", err)
	}

	timeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("API_TIMEOUT is not valid: %w", err)
	}

	cur, err := currency.ParseISO(getEnv("CURRENCY", "USD"))
	if err != nil {
		return Config{}, fmt.Errorf("CURRENCY is not valid: %w", err)
	}

	return Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		APITimeout:  timeout,
		Currency:    cur,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
