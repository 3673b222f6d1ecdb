package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CLIConfig holds CLI configuration persisted to disk. The session token is
// the bearer credential issued by the server at login; any 401 clears it.
type CLIConfig struct {
	ServerURL string `yaml:"server_url,omitempty"`
	Token     string `yaml:"token,omitempty"`
	Username  string `yaml:"username,omitempty"`
}

// configPath returns the path to the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "propstore", "config.yaml"), nil
}

// loadConfig reads the CLI config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadConfig() (CLIConfig, error) {
	path, err := configPath()
	if err != nil {
		return CLIConfig{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return CLIConfig{}, nil
	}
	if err != nil {
		return CLIConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// saveConfig writes the CLI config to disk.
func saveConfig(cfg CLIConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// getServerURL returns the server URL from env var, config, or default.
func getServerURL() string {
	if v := os.Getenv("PROPSTORE_SERVER_URL"); v != "" {
		return v
	}
	cfg, err := loadConfig()
	if err == nil && cfg.ServerURL != "" {
		return cfg.ServerURL
	}
	return "http://localhost:4000"
}

// getToken returns the session token from env var or config.
func getToken() string {
	if v := os.Getenv("PROPSTORE_TOKEN"); v != "" {
		return v
	}
	cfg, err := loadConfig()
	if err == nil {
		return cfg.Token
	}
	return ""
}

// clearToken removes the stored session token, keeping the rest of the
// config intact.
func clearToken() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Token == "" && cfg.Username == "" {
		return nil
	}
	cfg.Token = ""
	cfg.Username = ""
	return saveConfig(cfg)
}
