package observability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/marcos-nsantos/image-gateway/internal/infrastructure/observability"
)

func TestNewLogger(t *testing.T) {
	t.Run("builds json logger at requested level", func(t *testing.T) {
		logger, err := observability.NewLogger("warn", "json")

		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("builds console logger", func(t *testing.T) {
		logger, err := observability.NewLogger("debug", "console")

		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		logger, err := observability.NewLogger("loud", "json")

		assert.Nil(t, logger)
		assert.ErrorContains(t, err, "parsing log level")
	})
}
