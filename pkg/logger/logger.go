// Package logger keeps a zap logger in the context so request, job and agent
// fields follow a call chain without being passed around explicitly.
package logger

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment logs human-readable lines from debug level up.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment logs sampled JSON from info level up.
	ProductionEnvironment = "production"
	// TestEnvironment discards everything.
	TestEnvironment = "test"
)

// serviceName is attached to every entry of the default logger.
const serviceName = "wcagrep"

// defaultLogger is used when the context carries no logger. It discards
// output until Setup is called.
var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// Setup replaces the default logger with one configured for environment.
// A non-empty level ("debug", "info", "warn", "error") overrides the
// environment's default level. An unknown level is reported and ignored.
func Setup(environment string, level ...string) {
	var cfg zap.Config
	switch environment {
	case TestEnvironment:
		defaultLogger = zap.NewNop()

		return
	case ProductionEnvironment:
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	var levelErr error
	if len(level) > 0 && level[0] != "" {
		lvl, err := zap.ParseAtomicLevel(level[0])
		if err != nil {
			levelErr = fmt.Errorf("invalid log level %q: %w", level[0], err)
		} else {
			cfg.Level = lvl
		}
	}

	l, err := cfg.Build(zap.Fields(zap.String("service", serviceName)))
	if err != nil {
		// keep whatever was configured before
		return
	}
	defaultLogger = l
	if levelErr != nil {
		l.Warn("ignoring log level", zap.Error(levelErr))
	}
}

type key struct{}

// Get returns the logger stored in ctx, or the default logger.
func Get(ctx context.Context) *zap.Logger {
	if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
		return logger
	}

	return defaultLogger
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// WithFields stores a child of the ctx logger carrying fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Named stores a child of the ctx logger whose name is extended with name,
// e.g. "worker" or "agents.daily-prospector".
func Named(ctx context.Context, name string) context.Context {
	return WithLogger(ctx, Get(ctx).Named(name))
}

// Slog bridges the ctx logger to log/slog for libraries such as river that
// only accept a *slog.Logger.
func Slog(ctx context.Context) *slog.Logger {
	return slog.New(zapslog.NewHandler(Get(ctx).Core()))
}

// IsDebug reports whether debug entries of the ctx logger are written.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Core().Enabled(zap.DebugLevel)
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs at fatal level and exits the process.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
