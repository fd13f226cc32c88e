// Package config handles application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	Cache    bool
	CacheTTL time.Duration
	LogLevel string
	LogFile  string
	Port     string
	Color    string
}

// Load reads an optional .env file, then environment variables with
// defaults. Flags are applied on top by the caller.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from the process environment only
func FromEnv() *Config {
	return &Config{
		BaseURL:  getEnv("TRAINFINDER_BASE_URL", "http://localhost:8080"),
		Timeout:  getDurationEnv("TRAINFINDER_TIMEOUT_SECONDS", 0) * time.Second,
		Cache:    getBoolEnv("TRAINFINDER_CACHE", false),
		CacheTTL: getDurationEnv("TRAINFINDER_CACHE_TTL_SECONDS", 90) * time.Second,
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("TRAINFINDER_LOG_FILE", ""),
		Port:     getEnv("PORT", "3000"),
		Color:    getEnv("TRAINFINDER_COLOR", "auto"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
			return time.Duration(seconds)
		}
	}
	return time.Duration(defaultSeconds)
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
