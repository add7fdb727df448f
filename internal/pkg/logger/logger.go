// Package logger provides a global, Sugared Zap logger that can be enriched
// per request through the context. Entries are JSON encoded and, when the
// context carries an OpenTelemetry span, correlated with its trace and span
// identifiers.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ctxKeyType is the private type of the context key holding a derived logger.
type ctxKeyType struct{}

// ctxKey stores the *zap.SugaredLogger attached by Derive.
var ctxKey = ctxKeyType{}

var (
	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once
)

// config holds optional settings for the logger.
type config struct {
	output io.Writer // destination of the JSON entries
}

// Option configures the logger before initialization.
type Option func(*config)

// WithOutput sets the writer receiving the log entries. Defaults to stdout.
//
// Terminal front-ends should point this away from stdout so log lines do not
// interleave with the rendered frames.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// Init configures the global logger at the given minimum level ("debug",
// "info", "warn", "error", "panic", "fatal"). Calling Init multiple times has
// no effect after the first successful initialization.
//
// Returns an error if parsing the log level fails.
func Init(level string, opts ...Option) error {
	cfg := config{output: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(cfg.output),
			lvl,
		)

		baseLogger = zap.New(core).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return baseLogger.Sync()
}

// deriveFromCtx returns the logger stored in ctx (or the base logger) enriched
// with the span identifiers of ctx and the given key/value pairs.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = baseLogger
	}

	sc := trace.SpanContextFromContext(ctx)
	if sc.HasTraceID() {
		l = l.With("trace_id", sc.TraceID().String())
	}
	if sc.HasSpanID() {
		l = l.With("span_id", sc.SpanID().String())
	}

	if len(keysAndValues) > 0 {
		l = l.With(keysAndValues...)
	}

	return l
}

// Derive returns a copy of ctx carrying a logger enriched with the given
// key/value pairs. Every entry logged with the returned context includes them.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = baseLogger
	}

	return context.WithValue(ctx, ctxKey, l.With(keysAndValues...))
}

// log writes msg at the given level using the logger derived from ctx.
func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs a panic-level message (and then panics) with optional key/value context.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.PanicLevel, msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}
