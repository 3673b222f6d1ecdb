package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Port != 4000 {
		t.Errorf("port = %d, want 4000", cfg.Port)
	}
	if cfg.DataDir != "data" {
		t.Errorf("data dir = %q, want data", cfg.DataDir)
	}
	if cfg.Backend != BackendJSON {
		t.Errorf("backend = %q, want %q", cfg.Backend, BackendJSON)
	}
	if cfg.DevMode {
		t.Error("dev mode should default to off")
	}
}

func TestPortFromEnv(t *testing.T) {
	t.Setenv("PROPSTORE_PORT", "8080")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Port)
	}
}

func TestPortFallsBackToPlainPort(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Port)
	}

	// PROPSTORE_PORT wins over PORT.
	t.Setenv("PROPSTORE_PORT", "8081")
	cfg, err = FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Port != 8081 {
		t.Errorf("port = %d, want 8081", cfg.Port)
	}
}

func TestInvalidPort(t *testing.T) {
	t.Setenv("PROPSTORE_PORT", "not-a-number")

	if _, err := FromEnv(); err == nil {
		t.Error("expected an error for a non-numeric port")
	}
}

func TestUnknownBackend(t *testing.T) {
	t.Setenv("PROPSTORE_STORE", "cassandra")

	if _, err := FromEnv(); err == nil {
		t.Error("expected an error for an unknown backend")
	}
}

func TestRemoteBackendRequiresURL(t *testing.T) {
	t.Setenv("PROPSTORE_STORE", BackendRemote)

	if _, err := FromEnv(); err == nil {
		t.Error("expected an error when PROPSTORE_REMOTE_URL is unset")
	}

	t.Setenv("PROPSTORE_REMOTE_URL", "https://hosted.example/v1")
	t.Setenv("PROPSTORE_REMOTE_API_KEY", "secret")
	t.Setenv("PROPSTORE_REMOTE_FALLBACK", "true")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.RemoteURL != "https://hosted.example/v1" {
		t.Errorf("remote url = %q", cfg.RemoteURL)
	}
	if cfg.RemoteAPIKey != "secret" {
		t.Errorf("remote api key = %q", cfg.RemoteAPIKey)
	}
	if !cfg.RemoteFallback {
		t.Error("remote fallback should be enabled")
	}
}

func TestLogLevel(t *testing.T) {
	t.Setenv("PROPSTORE_LOG_LEVEL", "warn")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level = %q, want warn", cfg.LogLevel)
	}

	t.Setenv("PROPSTORE_LOG_LEVEL", "verbose")
	if _, err := FromEnv(); err == nil {
		t.Error("expected an error for an unknown log level")
	}
}

func TestAdminBootstrapCredentials(t *testing.T) {
	t.Setenv("PROPSTORE_ADMIN_USER", "chief")
	t.Setenv("PROPSTORE_ADMIN_PASSWORD", "s3cret")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.AdminUsername != "chief" || cfg.AdminPassword != "s3cret" {
		t.Errorf("admin = %q/%q", cfg.AdminUsername, cfg.AdminPassword)
	}
}
