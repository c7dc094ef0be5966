package logger_test

import (
	"context"
	"discovery/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "staging"} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(env) })
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGet_PrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	def := logger.Get(ctx)
	require.NotNil(t, def)

	custom := zap.NewExample()
	require.Same(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields_AttachesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("userID", "u-1"), zap.Int("limit", 20))
	logger.Info(ctx, "feed served")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "feed served", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "u-1", fields["userID"])
	require.EqualValues(t, 20, fields["limit"])
}

func TestIsDebug(t *testing.T) {
	debugCore, _ := observer.New(zapcore.DebugLevel)
	infoCore, _ := observer.New(zapcore.InfoLevel)

	require.True(t, logger.IsDebug(logger.WithLogger(context.Background(), zap.New(debugCore))))
	require.False(t, logger.IsDebug(logger.WithLogger(context.Background(), zap.New(infoCore))))
}

func TestLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "d")
	logger.Info(ctx, "i")
	logger.Warn(ctx, "w")
	logger.Error(ctx, "e")

	levels := make([]zapcore.Level, 0, 4)
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}

func TestSlog_WritesThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Slog(ctx).Info("job completed", "kind", "GenerateSuggestions")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "job completed", entries[0].Message)
	require.Equal(t, "GenerateSuggestions", entries[0].ContextMap()["kind"])
}
