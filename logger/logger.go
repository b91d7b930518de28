package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger interface {
	Info(msg string, keyvals ...interface{})

	Warn(msg string, keyvals ...interface{})

	Error(msg string, keyvals ...interface{})

	Debug(msg string, keyvals ...interface{})
}

func New() Logger {
	return NewWithLevel("debug")
}

// NewWithLevel builds the JSON logger writing to stderr at the given level name.
// Unknown names fall back to debug.
func NewWithLevel(level string) Logger {
	return newJSON(os.Stderr, parseLevel(level))
}

// Discard returns a logger that drops everything, for tests.
func Discard() Logger {
	return newJSON(io.Discard, slog.LevelError+1)
}

func newJSON(w io.Writer, level slog.Level) Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: true, // include file + line number
	}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
