// Package log wraps a zap sugared logger behind package-level helpers.
package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar = zap.NewNop().Sugar()

// RegisterLogger builds the process logger from options and installs it.
func RegisterLogger(opts *Options) {
	var level zapcore.Level
	_ = level.UnmarshalText([]byte(opts.Level))

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = opts.Encoding
	if opts.Encoding == "console" {
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	sugar = logger.Sugar()
}

// Sync flushes buffered log entries.
func Sync() {
	_ = sugar.Sync()
}

// Debugw ...
func Debugw(msg string, keysAndValues ...interface{}) {
	sugar.Debugw(msg, keysAndValues...)
}

// Infow ...
func Infow(msg string, keysAndValues ...interface{}) {
	sugar.Infow(msg, keysAndValues...)
}

// Warnw ...
func Warnw(msg string, keysAndValues ...interface{}) {
	sugar.Warnw(msg, keysAndValues...)
}

// Errorw ...
func Errorw(msg string, keysAndValues ...interface{}) {
	sugar.Errorw(msg, keysAndValues...)
}

// Fatalw ...
func Fatalw(msg string, keysAndValues ...interface{}) {
	sugar.Fatalw(msg, keysAndValues...)
}

// CtxDebugw ...
func CtxDebugw(_ context.Context, msg string, keysAndValues ...interface{}) {
	sugar.Debugw(msg, keysAndValues...)
}

// CtxInfow ...
func CtxInfow(_ context.Context, msg string, keysAndValues ...interface{}) {
	sugar.Infow(msg, keysAndValues...)
}

// CtxWarnw ...
func CtxWarnw(_ context.Context, msg string, keysAndValues ...interface{}) {
	sugar.Warnw(msg, keysAndValues...)
}

// CtxErrorw ...
func CtxErrorw(_ context.Context, msg string, keysAndValues ...interface{}) {
	sugar.Errorw(msg, keysAndValues...)
}
