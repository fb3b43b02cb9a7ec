package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	FreeTodoLimit int    // Maximum todos a free (non-pro) user may hold
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:       envOr("APP_PORT", "3333"),       // Application port
		FreeTodoLimit: envIntOr("FREE_TODO_LIMIT", 10), // Free plan todo quota
		IsProd:        os.Getenv("IS_PROD") == "true",  // Is production environment
	}
}

// envOr returns the value of the environment variable k, or d when unset
func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v // Use the configured value
	}
	return d // Fall back to the default
}

// envIntOr returns the integer value of k, or d when unset or not a positive number
func envIntOr(k string, d int) int {
	if v, err := strconv.Atoi(os.Getenv(k)); err == nil && v > 0 {
		return v // Use the configured value
	}
	return d // Fall back to the default
}
