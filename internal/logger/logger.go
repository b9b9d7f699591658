package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Default is the process logger. It writes text to stderr so stdout stays
// reserved for results.
var Default = NewText("info", os.Stderr)

// ParseLevel maps debug|info|warn|warning|error to a slog level.
// Unknown strings fall back to info.
func ParseLevel(level string) slog.Level {
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

// New creates a JSON logger with the specified level and output.
func New(level string, output io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// NewText creates a text-formatted logger.
func NewText(level string, output io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ForFormat returns a JSON logger for "json" and a text logger otherwise.
func ForFormat(format, level string, output io.Writer) *slog.Logger {
	if strings.EqualFold(format, "json") {
		return New(level, output)
	}
	return NewText(level, output)
}

// SetDefault replaces Default and the slog package default.
func SetDefault(logger *slog.Logger) {
	Default = logger
	slog.SetDefault(logger)
}
