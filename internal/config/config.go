package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string
	// BaseURL is the externally visible base URL of the service.
	BaseURL string
	// SessionSecret signs the cookie session binding a browser to its screen.
	SessionSecret string

	// SurrealDB connection settings for the credential authenticator.
	DBUrl    string
	DBUser   string
	DBPass   string
	DBNs     string
	DBDb     string
	DBAccess string
}

// New loads configuration from the environment, reading a .env file first
// when one is present.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Addr:          getenv("APP_ADDR", ":8080"),
		BaseURL:       getenv("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		DBUrl:         os.Getenv("SURREAL_URL"),
		DBUser:        os.Getenv("SURREAL_USER"),
		DBPass:        os.Getenv("SURREAL_PASS"),
		DBNs:          os.Getenv("SURREAL_NS"),
		DBDb:          os.Getenv("SURREAL_DB"),
		DBAccess:      getenv("SURREAL_ACCESS", "account"),
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("required environment variable SESSION_SECRET is not set")
	}
	if cfg.DBUrl == "" || cfg.DBNs == "" || cfg.DBDb == "" {
		return nil, fmt.Errorf("required environment variables SURREAL_URL, SURREAL_NS, or SURREAL_DB are not set")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
