package logger

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func resetLogger() {
	baseLogger = nil
	initBaseLoggerOnce = sync.Once{}
}

// observe replaces the base logger with one recording every entry.
func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	baseLogger = zap.New(core).Sugar()
	t.Cleanup(resetLogger)

	return logs
}

func spanContext(t *testing.T) trace.SpanContext {
	t.Helper()

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	return trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
}

func TestInit(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run("should initialize at "+level, func(t *testing.T) {
			resetLogger()

			require.NoError(t, Init(level))
			assert.NotNil(t, baseLogger)
		})
	}

	t.Run("should reject an unknown level", func(t *testing.T) {
		resetLogger()

		assert.Error(t, Init("verbose"))
		assert.Nil(t, baseLogger)
	})

	t.Run("should initialize only once", func(t *testing.T) {
		resetLogger()
		require.NoError(t, Init("debug"))
		first := baseLogger

		require.NoError(t, Init("error"))

		assert.Same(t, first, baseLogger)
	})
}

func TestDerive(t *testing.T) {
	t.Run("should carry fields into later calls", func(t *testing.T) {
		logs := observe(t)

		ctx := Derive(t.Context(), "height", 42)
		Info(ctx, "block ingested", "retained", true)

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "block ingested", entries[0].Message)
		assert.Equal(t, map[string]any{"height": int64(42), "retained": true}, entries[0].ContextMap())
	})

	t.Run("should stack fields across derivations", func(t *testing.T) {
		logs := observe(t)

		ctx := Derive(Derive(t.Context(), "pass", "a"), "batch", 2)
		Warn(ctx, "slow batch")

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, map[string]any{"pass": "a", "batch": int64(2)}, logs.All()[0].ContextMap())
	})

	t.Run("should store a sugared logger even without fields", func(t *testing.T) {
		observe(t)

		l, ok := Derive(t.Context()).Value(ctxKey).(*zap.SugaredLogger)

		assert.True(t, ok)
		assert.NotNil(t, l)
	})
}

func TestDeriveFromCtx(t *testing.T) {
	t.Run("should attach trace and span ids of the active span", func(t *testing.T) {
		logs := observe(t)
		ctx := trace.ContextWithSpanContext(t.Context(), spanContext(t))

		deriveFromCtx(ctx).Info("traced")

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["trace_id"])
		assert.Equal(t, "00f067aa0ba902b7", fields["span_id"])
	})

	t.Run("should attach nothing for an empty span context", func(t *testing.T) {
		logs := observe(t)
		ctx := trace.ContextWithSpanContext(t.Context(), trace.SpanContext{})

		deriveFromCtx(ctx).Info("untraced")

		require.Equal(t, 1, logs.Len())
		assert.Empty(t, logs.All()[0].ContextMap())
	})

	t.Run("should fall back to the base logger", func(t *testing.T) {
		observe(t)

		assert.Same(t, baseLogger, deriveFromCtx(t.Context()))
	})
}

func TestLevels(t *testing.T) {
	logs := observe(t)
	ctx := t.Context()

	Debug(ctx, "d")
	Info(ctx, "i")
	Warn(ctx, "w")
	Error(ctx, "e")

	levels := make([]zapcore.Level, 0, logs.Len())
	for _, entry := range logs.All() {
		levels = append(levels, entry.Level)
	}
	assert.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)

	assert.Panics(t, func() { Panic(ctx, "p", "key", "value") })
}

func TestSync(t *testing.T) {
	t.Run("should not panic after Init", func(t *testing.T) {
		resetLogger()
		require.NoError(t, Init("info"))

		assert.NotPanics(t, func() { _ = Sync() })
	})

	t.Run("should panic before Init", func(t *testing.T) {
		resetLogger()

		assert.Panics(t, func() { _ = Sync() })
	})
}

func TestFatal(t *testing.T) {
	if os.Getenv("LEDGERMIRROR_TEST_FATAL") == "1" {
		_ = Init("debug")
		Fatal(Derive(context.Background(), "component", "test"), "fatal error for test", "key", "value")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal$")
	cmd.Env = append(os.Environ(), "LEDGERMIRROR_TEST_FATAL=1")

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()

	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "the subprocess should exit with a non-zero status")
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, stdout.String(), `"level":"fatal"`)
	assert.Contains(t, stdout.String(), `"component":"test"`)
}
