// Package logging provides structured logging setup for the property store.
package logging

import (
	"log/slog"
	"os"
)

// Setup initializes the default slog logger. Dev mode uses human-readable
// text at debug level; prod uses JSON at info. A non-empty level overrides
// the mode's default, so a production instance can be turned up to debug
// while chasing a hosted-store issue without flipping dev mode on.
func Setup(devMode bool, level string) {
	lvl := slog.LevelInfo
	if devMode {
		lvl = slog.LevelDebug
	}
	if parsed, ok := parseLevel(level); ok {
		lvl = parsed
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if devMode {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// parseLevel maps a level name to a slog level. Unknown or empty names
// report false and leave the mode default in effect.
func parseLevel(level string) (slog.Level, bool) {
	switch level {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}
