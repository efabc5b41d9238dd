package rvec

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with rvec-specific fields.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithKind adds a kind field to the logger.
func (l *Logger) WithKind(k Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", k.String()),
	}
}

// WithLen adds a length field to the logger.
func (l *Logger) WithLen(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("len", n),
	}
}

// LogOp logs a completed vector operation over n elements.
func (l *Logger) LogOp(ctx context.Context, op string, n int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "operation failed",
			"op", op,
			"len", n,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "operation completed",
		"op", op,
		"len", n,
	)
}

// LogDispatch logs the execution plan chosen for an elementwise kernel.
func (l *Logger) LogDispatch(ctx context.Context, op string, n, chunks int) {
	l.DebugContext(ctx, "kernel dispatch",
		"op", op,
		"len", n,
		"chunks", chunks,
	)
}
