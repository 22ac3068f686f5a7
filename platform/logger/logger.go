package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxFieldsKey struct{}

var (
	globalLogger *logger
	initOnce     sync.Once
	mu           sync.RWMutex
)

type logger struct {
	zap *zap.Logger
}

// Init builds the global logger. Subsequent calls are no-ops.
func Init(level string, asJSON bool) error {
	var initErr error

	initOnce.Do(func() {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			initErr = fmt.Errorf("logger.Init: parse level %q: %w", level, err)
			return
		}

		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "timestamp"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

		var encoder zapcore.Encoder
		if asJSON {
			encoder = zapcore.NewJSONEncoder(encCfg)
		} else {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
			encoder = zapcore.NewConsoleEncoder(encCfg)
		}

		core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(lvl))

		mu.Lock()
		globalLogger = &logger{zap: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
		mu.Unlock()
	})

	return initErr
}

// L returns the global logger, falling back to a nop logger before Init.
func L() *logger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		return &logger{zap: zap.NewNop()}
	}
	return globalLogger
}

// SetNopLogger replaces the global logger with one that discards everything.
func SetNopLogger() {
	mu.Lock()
	globalLogger = &logger{zap: zap.NewNop()}
	mu.Unlock()
}

func Sync() error {
	return L().zap.Sync()
}

// ContextWithFields returns a copy of ctx that carries fields appended to every
// record logged with it.
func ContextWithFields(ctx context.Context, fields ...Field) context.Context {
	existing := fieldsFromContext(ctx)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)

	return context.WithValue(ctx, ctxFieldsKey{}, merged)
}

func fieldsFromContext(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(ctxFieldsKey{}).([]Field)
	return fields
}

func With(fields ...Field) *logger {
	return &logger{zap: L().zap.With(fields...)}
}

func (l *logger) With(fields ...Field) *logger {
	return &logger{zap: l.zap.With(fields...)}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zap.Debug(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zap.Info(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zap.Warn(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zap.Error(msg, append(fieldsFromContext(ctx), fields...)...)
}

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }
