package intern

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with interner-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithName adds a name field to the logger (useful when running several interners).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("interner", name),
	}
}

// LogOverflow logs a rejected insertion.
func (l *Logger) LogOverflow(position, width, maxPosition int) {
	l.Warn("handle space exhausted",
		"position", position,
		"width", width,
		"max", maxPosition,
	)
}

// LogRemove logs a removal and how many positions it shifted.
func (l *Logger) LogRemove(position, shifted int) {
	l.Debug("value removed",
		"position", position,
		"shifted", shifted,
	)
}

// LogClear logs a clear operation.
func (l *Logger) LogClear(dropped int) {
	l.Debug("interner cleared",
		"dropped", dropped,
	)
}

// LogExport logs a terminal export.
func (l *Logger) LogExport(count int) {
	l.Debug("interner exported",
		"count", count,
	)
}
