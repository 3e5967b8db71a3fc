// Package config loads and validates application configuration from
// environment variables. A .env file in the working directory is applied
// first when present (development convenience; real deployments set the
// environment directly).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tientran/tripsync/backend/internal/auth"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// JWTSecret signs session tokens. Required.
	JWTSecret string

	// SessionDuration is how long issued sessions stay valid.
	// Defaults to "1w". Valid values: 1h, 1d, 3d, 1w, 1mo, 3mo, never.
	SessionDuration auth.SessionDuration

	// Users is the static username→password table for login.
	// Set AUTH_USERS to "alice:secret,bob:hunter2". May be empty, in which
	// case every login fails (useful when only read paths are exercised).
	Users auth.StaticChecker

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string
}

// Load reads configuration from the environment and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	// Missing .env is fine; values already in the environment win.
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		Users:       parseUsers(os.Getenv("AUTH_USERS")),
	}

	duration, err := auth.ParseSessionDuration(getEnv("SESSION_DURATION", "1w"))
	if err != nil {
		return Config{}, fmt.Errorf("SESSION_DURATION: %w", err)
	}
	cfg.SessionDuration = duration

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// parseUsers parses "user:pass,user:pass" into a credential table,
// skipping malformed entries.
func parseUsers(s string) auth.StaticChecker {
	users := auth.StaticChecker{}
	for _, entry := range splitCSV(s) {
		name, pass, ok := strings.Cut(entry, ":")
		if !ok || name == "" {
			continue
		}
		users[name] = pass
	}
	return users
}
