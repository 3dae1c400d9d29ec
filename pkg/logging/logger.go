// Package logging wraps log/slog with the conventions this service logs
// under: JSON output, a service/env stamp on the root logger of each binary
// and a component attribute per subsystem.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the structured logger shared by every package.
type Logger struct {
	*slog.Logger
}

// New creates a JSON logger writing to stdout. Unknown or empty level names
// fall back to info.
func New(level string) *Logger {
	return NewWriter(os.Stdout, level)
}

// NewWriter creates a JSON logger writing to w. Tests use it to capture and
// decode log lines.
func NewWriter(w io.Writer, level string) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &Logger{Logger: slog.New(handler)}
}

// ForService stamps a binary's root logger with the service name and
// environment so aggregated log streams stay attributable.
func ForService(level, service, env string) *Logger {
	return &Logger{Logger: New(level).With("service", service, "env", env)}
}

// Component returns a child logger tagged with a subsystem name such as
// "chat" or "notify".
func (l *Logger) Component(name string) *Logger {
	return &Logger{Logger: l.With("component", name)}
}

// Default returns an info-level logger for callers constructed without one.
func Default() *Logger {
	return New("info")
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
