package logger_test

import (
	"testing"

	"github.com/muhammadheryan/wa-crm/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	require.NoError(t, logger.Init("production", "warn"))
	assert.False(t, logger.Get().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Get().Core().Enabled(zapcore.WarnLevel))

	assert.Error(t, logger.Init("development", "loud"))
}

func TestSet(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.Set(zap.New(core))
	defer logger.Set(zap.NewNop())

	logger.With(zap.String("entity", "MESSAGES")).Info("search")
	logger.Error("[Search] err repo", zap.String("error", "boom"))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "MESSAGES", logs.All()[0].ContextMap()["entity"])
	assert.Equal(t, "boom", logs.All()[1].ContextMap()["error"])
}
