package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"mapmemo/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	t.Run("development with explicit level", func(t *testing.T) {
		l, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("production with empty level defaults to info", func(t *testing.T) {
		l, err := logger.NewLogger(logger.Production, "")
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("invalid level", func(t *testing.T) {
		l, err := logger.NewLogger(logger.Development, "loud")
		require.Error(t, err)
		assert.Nil(t, l)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestFromContext(t *testing.T) {
	t.Run("logger stored in context", func(t *testing.T) {
		l := logger.NewNop()
		ctx := logger.NewContext(context.Background(), l)

		got, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, l, got)
	})

	t.Run("no logger in context", func(t *testing.T) {
		got, err := logger.FromContext(context.Background())
		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})

	t.Run("derived context keeps logger", func(t *testing.T) {
		type keyType struct{}
		l := logger.NewNop()
		ctx := context.WithValue(logger.NewContext(context.Background(), l), keyType{}, "v")

		got, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, l, got)
	})
}

func TestLog(t *testing.T) {
	logger.SetGlobalLogger(nil)
	defer logger.SetGlobalLogger(nil)

	t.Run("context logger wins over global", func(t *testing.T) {
		ctxLogger := logger.NewNop()
		globalLogger := logger.NewNop()
		logger.SetGlobalLogger(globalLogger)

		got := logger.Log(logger.NewContext(context.Background(), ctxLogger))
		assert.Same(t, ctxLogger, got)
	})

	t.Run("global logger when context is empty", func(t *testing.T) {
		globalLogger := logger.NewNop()
		logger.SetGlobalLogger(globalLogger)

		assert.Same(t, globalLogger, logger.Log(context.Background()))
	})

	t.Run("fallback logger is a singleton", func(t *testing.T) {
		logger.SetGlobalLogger(nil)

		first := logger.Log(context.Background())
		second := logger.Log(context.Background())
		require.NotNil(t, first)
		assert.Same(t, first, second)
	})
}

func TestOperationID(t *testing.T) {
	t.Run("explicit id", func(t *testing.T) {
		ctx := logger.NewOperationContext(context.Background(), "op-1")
		id, ok := logger.GetOperationID(ctx)
		assert.True(t, ok)
		assert.Equal(t, "op-1", id)
	})

	t.Run("generated id", func(t *testing.T) {
		ctx := logger.NewOperationContext(context.Background(), "")
		id, ok := logger.GetOperationID(ctx)
		assert.True(t, ok)
		assert.Len(t, id, 36)
	})

	t.Run("missing id", func(t *testing.T) {
		_, ok := logger.GetOperationID(context.Background())
		assert.False(t, ok)
	})
}

func TestOperationIDIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.FromZap(zap.New(core))

	ctx := logger.NewOperationContext(context.Background(), "op-42")
	l.Info(ctx, "with id", zap.String("key", "value"))
	l.Info(context.Background(), "without id")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "op-42", entries[0].ContextMap()[logger.OperationID])
	assert.Equal(t, "value", entries[0].ContextMap()["key"])
	assert.NotContains(t, entries[1].ContextMap(), logger.OperationID)
}

func TestWithOperationID(t *testing.T) {
	l := logger.NewNop()

	assert.Same(t, l, l.WithOperationID(context.Background()))

	ctx := logger.NewOperationContext(context.Background(), "op-7")
	assert.NotSame(t, l, l.WithOperationID(ctx))
}
