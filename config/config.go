// Package config collects the environment-driven settings the server needs.
// Values come from the process environment; main loads .env first so local
// development works without exporting anything.
package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port        string
	AppEnv      string
	DatabaseURL string
	CORSOrigins string
	FrontendURL string

	JWTSecret string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
}

// Load reads the configuration from the environment. It fails only on
// settings the server cannot run without.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        Getenv("PORT", "3000"),
		AppEnv:      Getenv("APP_ENV", "development"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CORSOrigins: Getenv("CORS_ORIGINS", "http://localhost:5173"),
		FrontendURL: Getenv("FRONTEND_URL", "http://localhost:5173"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleCallbackURL:  Getenv("GOOGLE_CALLBACK_URL", "http://localhost:3000/api/auth/google/callback"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	return cfg, nil
}

// GoogleEnabled reports whether the external login flow is configured.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

// Production reports whether the server runs with production hardening.
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

// Getenv returns the value of key or def when unset.
func Getenv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
