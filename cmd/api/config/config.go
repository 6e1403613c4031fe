// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables, read once at startup.
type Config struct {
	// Host is the interface the HTTP server binds to. Empty means all interfaces.
	Host string

	// Port is the TCP port the HTTP server listens on. Defaults to 8080.
	Port int

	// PathPrefix is the leading URL segment all API routes are mounted under.
	// Defaults to "/api/v1". Must start with "/" and not end with one.
	PathPrefix string

	// BaseURL, when set, is the externally visible base URL advertised by the
	// documentation config endpoint. When empty the server URL is inferred
	// from each incoming request instead.
	BaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	CORSOrigins []string

	// RequestTimeout bounds how long a single request may spend in the
	// service layer. Defaults to 5s.
	RequestTimeout time.Duration

	// NotificationsEnabled turns ntfy pushes on book creation on or off.
	NotificationsEnabled bool

	// NotificationsURL is the ntfy topic base URL.
	NotificationsURL string

	// NotificationsTimeout bounds a single ntfy delivery. Defaults to 2s.
	NotificationsTimeout time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming any variable that fails to parse.
func Load() (Config, error) {
	cfg := Config{
		Host:             os.Getenv("HOST"),
		PathPrefix:       getEnv("PATH_PREFIX", "/api/v1"),
		BaseURL:          strings.TrimSuffix(os.Getenv("BASE_URL"), "/"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		NotificationsURL: getEnv("NOTIFICATIONS_URL", "https://ntfy.sh/bookshelf"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return Config{}, fmt.Errorf("environment variable PORT must be an integer: %w", err)
	}
	cfg.Port = port

	if !strings.HasPrefix(cfg.PathPrefix, "/") || strings.HasSuffix(cfg.PathPrefix, "/") {
		return Config{}, fmt.Errorf("environment variable PATH_PREFIX must start with '/' and not end with one, got %q", cfg.PathPrefix)
	}

	cfg.RequestTimeout, err = time.ParseDuration(getEnv("HTTP_REQUEST_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("environment variable HTTP_REQUEST_TIMEOUT must be a duration: %w", err)
	}

	cfg.NotificationsEnabled, err = strconv.ParseBool(getEnv("NOTIFICATIONS_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("environment variable NOTIFICATIONS_ENABLED must be a boolean: %w", err)
	}

	cfg.NotificationsTimeout, err = time.ParseDuration(getEnv("NOTIFICATIONS_TIMEOUT", "2s"))
	if err != nil {
		return Config{}, fmt.Errorf("environment variable NOTIFICATIONS_TIMEOUT must be a duration: %w", err)
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
