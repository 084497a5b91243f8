package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names recognized on top of the config file.
const (
	EnvBackendURL = "PREPTERM_API_URL"
	EnvAPIKey     = "PREPTERM_API_KEY"
)

// DefaultBackendURL is used when neither flag, env, nor config set one.
const DefaultBackendURL = "http://localhost:8080"

// LoadEnv loads a .env file if present. A missing file is fine; explicit
// environment variables always win over .env contents.
func LoadEnv() {
	// godotenv never overrides variables already set in the environment.
	_ = godotenv.Load()
}

// BackendURLFromEnv returns the backend URL from the environment, if set.
func BackendURLFromEnv() string {
	return os.Getenv(EnvBackendURL)
}

// APIKeyFromEnv returns the API key from the environment, if set.
func APIKeyFromEnv() string {
	return os.Getenv(EnvAPIKey)
}
