package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigSaveAndLoad(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	cfg := CLIConfig{
		ServerURL: "http://myhost:9090",
		Token:     "deadbeef",
		Username:  "admin",
	}

	if err := saveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	path := filepath.Join(tmp, ".config", "propstore", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not found: %v", err)
	}

	loaded, err := loadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.ServerURL != cfg.ServerURL {
		t.Errorf("server_url = %q, want %q", loaded.ServerURL, cfg.ServerURL)
	}
	if loaded.Token != cfg.Token {
		t.Errorf("token = %q, want %q", loaded.Token, cfg.Token)
	}
	if loaded.Username != cfg.Username {
		t.Errorf("username = %q, want %q", loaded.Username, cfg.Username)
	}
}

func TestConfigLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if cfg.ServerURL != "" || cfg.Token != "" {
		t.Error("expected zero-value config for missing file")
	}
}

func TestGetServerURLFromEnv(t *testing.T) {
	t.Setenv("PROPSTORE_SERVER_URL", "http://custom:1234")
	t.Setenv("HOME", t.TempDir())

	if url := getServerURL(); url != "http://custom:1234" {
		t.Errorf("url = %q, want %q", url, "http://custom:1234")
	}
}

func TestGetServerURLDefault(t *testing.T) {
	t.Setenv("PROPSTORE_SERVER_URL", "")
	t.Setenv("HOME", t.TempDir())

	if url := getServerURL(); url != "http://localhost:4000" {
		t.Errorf("url = %q, want %q", url, "http://localhost:4000")
	}
}

func TestGetTokenFromEnv(t *testing.T) {
	t.Setenv("PROPSTORE_TOKEN", "env-token")
	t.Setenv("HOME", t.TempDir())

	if token := getToken(); token != "env-token" {
		t.Errorf("token = %q, want %q", token, "env-token")
	}
}

func TestGetTokenFromConfig(t *testing.T) {
	t.Setenv("PROPSTORE_TOKEN", "")
	t.Setenv("HOME", t.TempDir())

	if err := saveConfig(CLIConfig{Token: "stored-token"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if token := getToken(); token != "stored-token" {
		t.Errorf("token = %q, want %q", token, "stored-token")
	}
}

func TestClearToken(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := CLIConfig{ServerURL: "http://myhost:9090", Token: "deadbeef", Username: "admin"}
	if err := saveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := clearToken(); err != nil {
		t.Fatalf("clear token: %v", err)
	}

	loaded, err := loadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Token != "" || loaded.Username != "" {
		t.Errorf("token/username = %q/%q, want cleared", loaded.Token, loaded.Username)
	}
	if loaded.ServerURL != "http://myhost:9090" {
		t.Errorf("server_url = %q, want preserved", loaded.ServerURL)
	}
}

func TestClearTokenWhenNotLoggedIn(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// No config file at all.
	if err := clearToken(); err != nil {
		t.Fatalf("clear token with no config: %v", err)
	}
}
