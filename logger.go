package splaycache

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with splaycache-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithWorkload adds a workload field to the logger.
func (l *Logger) WithWorkload(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("workload", name),
	}
}

// WithCache adds a cache field to the logger.
func (l *Logger) WithCache(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("cache", name),
	}
}

// LogFibonacci logs one timed memoized Fibonacci computation.
func (l *Logger) LogFibonacci(ctx context.Context, cache string, n int, duration time.Duration) {
	l.DebugContext(ctx, "fibonacci computed",
		"cache", cache,
		"n", n,
		"duration", duration,
	)
}

// LogAccess logs the outcome of an access workload against one cache.
func (l *Logger) LogAccess(ctx context.Context, cache string, hits, misses int, duration time.Duration) {
	l.InfoContext(ctx, "access workload completed",
		"cache", cache,
		"hits", hits,
		"misses", misses,
		"duration", duration,
	)
}

// LogSweep logs the end of a workload sweep.
func (l *Logger) LogSweep(ctx context.Context, workload string, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sweep failed",
			"workload", workload,
			"rows", rows,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "sweep completed",
			"workload", workload,
			"rows", rows,
		)
	}
}
