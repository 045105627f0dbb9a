package slotvec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with slotvec-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithElemSize adds an element size field to the logger.
func (l *Logger) WithElemSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("elem_size", size),
	}
}

// WithName adds a name field to the logger (useful for telling vectors apart).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("vector", name),
	}
}

// LogGrow logs a capacity growth event.
func (l *Logger) LogGrow(oldCap, newCap, length int) {
	l.Debug("vector grown",
		"old_capacity", oldCap,
		"new_capacity", newCap,
		"length", length,
	)
}

// LogAllocFailure logs an operation aborted because the buffer could not grow.
func (l *Logger) LogAllocFailure(op string, capacity int, err error) {
	l.Error("allocation failed",
		"op", op,
		"capacity", capacity,
		"error", err,
	)
}

// LogCodecFailure logs an element that could not be decoded inside a callback.
func (l *Logger) LogCodecFailure(callback string, err error) {
	l.Error("element decode failed",
		"callback", callback,
		"error", err,
	)
}

// LogClose logs the destruction of a vector.
func (l *Logger) LogClose(destroyed int, err error) {
	if err != nil {
		l.Error("close failed",
			"destroyed", destroyed,
			"error", err,
		)
	} else {
		l.Debug("vector closed",
			"destroyed", destroyed,
		)
	}
}
