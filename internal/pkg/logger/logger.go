// Package logger provides a process-wide zap SugaredLogger that writes JSON
// to stdout and, when telemetry is enabled, mirrors every entry to the
// OpenTelemetry LoggerProvider through the otelzap bridge.
//
// Loggers travel in the context: Derive attaches fields to a context so
// every later call made with it carries them, and active spans contribute
// their trace_id and span_id automatically.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/ledgermirror/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// otelScope is the instrumentation scope name reported by the bridge core.
const otelScope = "github.com/gabapcia/ledgermirror"

type ctxKeyType struct{}

// ctxKey stores the derived *zap.SugaredLogger in a context.
var ctxKey = ctxKeyType{}

var (
	baseLogger         *zap.SugaredLogger
	initBaseLoggerOnce sync.Once
)

// Init configures the global logger at the given level ("debug", "info",
// "warn", "error", "panic" or "fatal"). Only the first successful call has
// an effect. It returns an error when the level cannot be parsed.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				lvl,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore(otelScope, otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes buffered entries. Call it before the process exits.
func Sync() error {
	return baseLogger.Sync()
}

// Derive returns a child context whose logger carries the given key/value pairs.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey, deriveFromCtx(ctx, keysAndValues...))
}

// deriveFromCtx returns the logger stored in ctx, or the base logger, with
// the given pairs and the identifiers of the active span attached.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = baseLogger
	}

	fields := make([]any, 0, len(keysAndValues)+4)
	fields = append(fields, keysAndValues...)

	sc := trace.SpanContextFromContext(ctx)
	if sc.HasTraceID() {
		fields = append(fields, "trace_id", sc.TraceID().String())
	}
	if sc.HasSpanID() {
		fields = append(fields, "span_id", sc.SpanID().String())
	}

	if len(fields) == 0 {
		return l
	}

	return l.With(fields...)
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs at debug level.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs at info level.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs at warn level.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs at error level.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs at panic level and then panics.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.PanicLevel, msg, keysAndValues...)
}

// Fatal logs at fatal level and then exits with status 1.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}
