package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A
// .env file in the working directory is merged in first; a missing file
// is not an error.
//
// Recognized variables:
//
//	SHOPFRONT_API_URL          base URL of the backend
//	SHOPFRONT_REQUEST_TIMEOUT  request deadline, Go duration string
//	SHOPFRONT_DATABASE_DSN     local SQLite file path
//	SHOPFRONT_KEY_PATH         local key file path
//	SHOPFRONT_HOME_URL         browser return address
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SHOPFRONT_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("SHOPFRONT_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("SHOPFRONT_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("SHOPFRONT_KEY_PATH"); v != "" {
		cfg.KeyPath = v
	}
	if v := os.Getenv("SHOPFRONT_HOME_URL"); v != "" {
		cfg.HomeURL = v
	}
}
