package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"", 0, false},
		{"verbose", 0, false},
		{"DEBUG", 0, false},
	}

	for _, tc := range cases {
		got, ok := parseLevel(tc.in)
		if ok != tc.ok {
			t.Errorf("parseLevel(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSetupLevelOverride(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	// Prod defaults to info; the override opens up debug.
	Setup(false, "debug")
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug override should enable debug logging in prod mode")
	}

	// Dev defaults to debug; the override tightens to error.
	Setup(true, "error")
	if slog.Default().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("error override should suppress warn logging")
	}
	if !slog.Default().Enabled(context.Background(), slog.LevelError) {
		t.Error("error override should keep error logging enabled")
	}

	// An empty level keeps the mode default.
	Setup(true, "")
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("dev mode should default to debug")
	}
}
