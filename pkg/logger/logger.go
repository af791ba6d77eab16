// Package logger provides the module's slog conventions: JSON output,
// env-configured level, per-component child loggers and a no-op logger
// for tests.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a JSON-formatted logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewFromEnv creates a stdout JSON logger with its level taken from the
// LOG_LEVEL environment variable (debug, info, warn, error; default info).
func NewFromEnv() *slog.Logger {
	return New(os.Stdout, parseLevel(os.Getenv("LOG_LEVEL")))
}

// Component returns a child logger tagged with a component name, so cache,
// rate-limit and HTTP log lines are separable in aggregation.
func Component(log *slog.Logger, name string) *slog.Logger {
	return log.With(slog.String("component", name))
}

// Nop returns a logger that discards everything. Use in tests and as a
// default where a nil logger would otherwise need guarding.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
