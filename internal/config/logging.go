package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a config level name onto slog. Unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a text logger writing to w at the configured level.
func NewLogger(level string, w io.Writer) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// OpenLogWriter opens the configured log file for appending, or returns
// fallback when no file is configured. The returned close func is never nil.
func OpenLogWriter(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		if fallback == nil {
			fallback = io.Discard
		}
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, func() error { return nil }, fmt.Errorf("opening log file: %w", err)
	}
	return f, f.Close, nil
}
