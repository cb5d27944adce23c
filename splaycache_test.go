package splaycache

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrInvalidConfig(t *testing.T) {
	err := NewInvalidConfig("step", 0, ErrInvalidStep)

	assert.EqualError(t, err, "invalid step: 0: step must be positive")
	assert.ErrorIs(t, err, ErrInvalidStep)
	assert.NotErrorIs(t, err, ErrInvalidRange)

	var ic *ErrInvalidConfig
	require.True(t, errors.As(err, &ic))
	assert.Equal(t, "step", ic.Field)
	assert.Equal(t, 0, ic.Value)

	assert.EqualError(t, NewInvalidConfig("max", -1, nil), "invalid max: -1")
}

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector

	assert.Equal(t, BasicMetricsStats{}, m.GetStats(), "empty collector averages to zero")

	m.RecordFibonacci("splay", 10, 2*time.Microsecond)
	m.RecordFibonacci("lru", 10, 4*time.Microsecond)
	m.RecordAccess("splay", 7, 3, time.Millisecond)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.FibonacciCount)
	assert.Equal(t, int64(3000), stats.FibonacciAvgNanos)
	assert.Equal(t, int64(1), stats.AccessCount)
	assert.Equal(t, int64(7), stats.AccessHits)
	assert.Equal(t, int64(3), stats.AccessMisses)
	assert.Equal(t, time.Millisecond.Nanoseconds(), stats.AccessAvgNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}

	assert.NotPanics(t, func() {
		m.RecordFibonacci("splay", 1, time.Second)
		m.RecordAccess("splay", 1, 1, time.Second)
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	l.WithWorkload("fibonacci").LogFibonacci(ctx, "splay", 42, time.Millisecond)
	assert.Contains(t, buf.String(), "workload=fibonacci")
	assert.Contains(t, buf.String(), "n=42")
	assert.Contains(t, buf.String(), "cache=splay")

	buf.Reset()
	l.WithCache("lru").LogAccess(ctx, "lru", 5, 1, time.Second)
	assert.Contains(t, buf.String(), "hits=5")

	buf.Reset()
	l.LogSweep(ctx, "access", 2, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")

	buf.Reset()
	l.LogSweep(ctx, "access", 3, nil)
	assert.Contains(t, buf.String(), "sweep completed")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()

	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelWarn))
}
