// Package config loads startup configuration from the process environment.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs at startup. It is constructed
// once in main and passed by reference to the components that need it.
type Config struct {
	Addr        string
	DatabaseURL string
	SecretKey   string
	TokenTTL    time.Duration
}

// Load reads configuration from a .env file when present, then from the
// environment. A missing signing secret or connection string is an
// unrecoverable startup error.
func Load() (*Config, error) {
	// Absent .env is fine; environment variables take over.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:        getEnv("ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SecretKey:   os.Getenv("SECRET_KEY"),
		TokenTTL:    time.Duration(getEnvAsInt("TOKEN_TTL_DAYS", 14)) * 24 * time.Hour,
	}

	if cfg.SecretKey == "" {
		return nil, errors.New("SECRET_KEY is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}
