package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"advent/internal/config"
)

func TestBuild(t *testing.T) {
	t.Run("text format at configured level", func(t *testing.T) {
		logger, err := Build(config.LoggingConfig{Level: "warn", Format: "text"}, false)
		require.NoError(t, err)
		defer logger.Sync()

		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("verbose forces debug", func(t *testing.T) {
		logger, err := Build(config.LoggingConfig{Level: "error", Format: "json"}, true)
		require.NoError(t, err)
		defer logger.Sync()

		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := Build(config.LoggingConfig{Level: "loud", Format: "text"}, false)
		assert.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := Build(config.LoggingConfig{Level: "info", Format: "xml"}, false)
		assert.Error(t, err)
	})
}
