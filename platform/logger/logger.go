// Package logger provides structured logging infrastructure for the tools.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// FileError logs a file operation failure
func (l *Logger) FileError(op, path string, err error) {
	l.Error("file_error",
		slog.String("op", op),
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
}

// RewriteSummary logs the outcome of one rewrite pass over a document
func (l *Logger) RewriteSummary(input, output string, lines, matched, rewritten, alternates int) {
	l.Info("rewrite_summary",
		slog.String("input", input),
		slog.String("output", output),
		slog.Int("lines", lines),
		slog.Int("tel_lines", matched),
		slog.Int("rewritten", rewritten),
		slog.Int("alternates", alternates),
	)
}
