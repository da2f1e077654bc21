package logger_test

import (
	"context"
	"exposure/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observed returns a context carrying a logger whose entries are captured.
func observed(level zapcore.Level) (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(level)

	return logger.WithLogger(context.Background(), zap.New(core)), logs
}

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "staging"} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(env) })
			require.NotNil(t, logger.Get(context.Background()))
		})
	}

	logger.Setup(logger.DevelopmentEnvironment)
	require.True(t, logger.IsDebug(context.Background()))

	logger.Setup(logger.ProductionEnvironment)
	require.False(t, logger.IsDebug(context.Background()))
}

func TestGet_PrefersContextLogger(t *testing.T) {
	ctx, logs := observed(zapcore.DebugLevel)

	logger.Info(ctx, "scan started")

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "scan started", logs.All()[0].Message)
}

func TestWithFields(t *testing.T) {
	ctx, logs := observed(zapcore.DebugLevel)
	ctx = logger.WithFields(ctx, zap.String("domain", "example.com"))
	ctx = logger.WithFields(ctx, zap.Int("endpoints", 3))

	logger.Warn(ctx, "endpoint probe failed")

	entry := logs.All()[0]
	require.Equal(t, zapcore.WarnLevel, entry.Level)
	require.Equal(t, map[string]any{"domain": "example.com", "endpoints": int64(3)}, entry.ContextMap())
}

func TestLevels(t *testing.T) {
	ctx, logs := observed(zapcore.InfoLevel)

	logger.Debug(ctx, "hidden")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	require.False(t, logger.IsDebug(ctx))
	require.Equal(t, 3, logs.Len())
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	require.Zero(t, logs.FilterMessage("hidden").Len())
}

func TestNamed(t *testing.T) {
	ctx, logs := observed(zapcore.DebugLevel)
	ctx = logger.Named(logger.Named(ctx, "surface"), "discovery")

	logger.Info(ctx, "probing")

	require.Equal(t, "surface.discovery", logs.All()[0].LoggerName)
}

func TestSlog(t *testing.T) {
	ctx, logs := observed(zapcore.DebugLevel)
	ctx = logger.WithFields(ctx, zap.String("component", "worker"))

	logger.Slog(ctx).Info("job completed", "kind", "BreachCheckJob")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "job completed", entry.Message)
	require.Equal(t, "BreachCheckJob", entry.ContextMap()["kind"])
	require.Equal(t, "worker", entry.ContextMap()["component"])
}
