package indexheap

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with indexheap-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithLen adds a len (num_elts) field to the logger.
func (l *Logger) WithLen(n int) *Logger {
	return &Logger{Logger: l.Logger.With("len", n)}
}

// LogPush logs a push operation.
func (l *Logger) LogPush(numElts, count int, err error) {
	if err != nil {
		l.Error("push failed", "num_elts", numElts, "count", count, "error", err)
		return
	}
	l.Debug("push completed", "num_elts", numElts, "count", count)
}

// LogPop logs a pop operation.
func (l *Logger) LogPop(numElts int, ok bool) {
	if !ok {
		l.Debug("pop on empty heap")
		return
	}
	l.Debug("pop completed", "num_elts", numElts)
}

// LogUpdate logs an update operation.
func (l *Logger) LogUpdate(slot int, err error) {
	if err != nil {
		l.Error("update failed", "slot", slot, "error", err)
		return
	}
	l.Debug("update completed", "slot", slot)
}

// LogGrow logs a heap array growth step.
func (l *Logger) LogGrow(oldCount, newCount int) {
	l.Info("heap array grown", "old_count", oldCount, "new_count", newCount)
}

// LogRehash logs a side-index rehash step.
func (l *Logger) LogRehash(oldCount, newCount int) {
	l.Info("side-index rehashed", "old_count", oldCount, "new_count", newCount)
}
