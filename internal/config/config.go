// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Backend names for the persistence layer.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendRemote = "remote"
)

// Config holds the property store service configuration.
type Config struct {
	Port    int
	DataDir string
	Backend string

	// Bootstrap admin, created only when no users exist yet.
	AdminUsername string
	AdminPassword string

	// Hosted datastore passthrough (Backend == remote).
	RemoteURL      string
	RemoteAPIKey   string
	RemoteFallback bool

	// LogLevel overrides the mode's default log level
	// (debug | info | warn | error).
	LogLevel string

	DevMode bool
}

// FromEnv creates a Config from environment variables, with defaults
// suitable for local development.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:           4000,
		DataDir:        envOrDefault("PROPSTORE_DATA_DIR", "data"),
		Backend:        envOrDefault("PROPSTORE_STORE", BackendJSON),
		AdminUsername:  envOrDefault("PROPSTORE_ADMIN_USER", ""),
		AdminPassword:  envOrDefault("PROPSTORE_ADMIN_PASSWORD", ""),
		RemoteURL:      os.Getenv("PROPSTORE_REMOTE_URL"),
		RemoteAPIKey:   os.Getenv("PROPSTORE_REMOTE_API_KEY"),
		RemoteFallback: os.Getenv("PROPSTORE_REMOTE_FALLBACK") == "true",
		LogLevel:       os.Getenv("PROPSTORE_LOG_LEVEL"),
		DevMode:        os.Getenv("PROPSTORE_DEV_MODE") == "true",
	}

	if v := envOrDefault("PROPSTORE_PORT", os.Getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid port %q: %w", v, err)
		}
		cfg.Port = port
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	switch cfg.Backend {
	case BackendJSON, BackendSQLite:
	case BackendRemote:
		if cfg.RemoteURL == "" {
			return Config{}, fmt.Errorf("PROPSTORE_REMOTE_URL is required for the remote backend")
		}
	default:
		return Config{}, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
