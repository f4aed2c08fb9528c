// Package config loads service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AllowedOrigin string
	StandardsPath string
	LogMode       string
	LogLevel      string
	CacheSize     int
}

// Load reads a .env file when one exists and then resolves every setting
// from the environment, falling back to defaults.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cacheSize, err := getEnvInt("CACHE_SIZE", 128)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		StandardsPath: getEnv("STANDARDS_PATH", ""),
		LogMode:       getEnv("LOG_MODE", "dev"),
		LogLevel:      getEnv("LOG_LEVEL", ""),
		CacheSize:     cacheSize,
	}, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", key, raw)
	}
	return n, nil
}
