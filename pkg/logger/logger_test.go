package logger_test

import (
	"context"
	"phishguard/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{
		logger.DevelopmentEnvironment,
		logger.ProductionEnvironment,
		logger.TestEnvironment,
	} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(env) })
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGet_PrefersContextLogger(t *testing.T) {
	logger.Setup(logger.TestEnvironment)

	custom := zap.NewExample()
	ctx := logger.WithLogger(context.Background(), custom)

	require.Equal(t, custom, logger.Get(ctx))
	require.NotEqual(t, custom, logger.Get(context.Background()))
}

func TestWithFields_AttachesFieldsToEveryEntry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("contextID", "tab-7"), zap.String("url", "https://example.com"))

	logger.Info(ctx, "verdict produced")
	logger.Warn(ctx, "signal unavailable", zap.String("signal", "ml"))

	entries := logs.All()
	require.Len(t, entries, 2)
	for _, e := range entries {
		fields := e.ContextMap()
		require.Equal(t, "tab-7", fields["contextID"])
		require.Equal(t, "https://example.com", fields["url"])
	}
	require.Equal(t, "ml", entries[1].ContextMap()["signal"])
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestIsDebug(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()
	require.True(t, logger.IsDebug(ctx))

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	infoLogger, err := cfg.Build()
	require.NoError(t, err)
	require.False(t, logger.IsDebug(logger.WithLogger(ctx, infoLogger)))
}

func TestLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "d")
	logger.Info(ctx, "i")
	logger.Warn(ctx, "w")
	logger.Error(ctx, "e")
	logger.Sync(ctx)

	levels := make([]zapcore.Level, 0, 4)
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}
