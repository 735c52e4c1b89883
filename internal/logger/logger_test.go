package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"whalestreet_ai_server/internal/logger"
)

func TestNew(t *testing.T) {
	t.Run("defaults to info level", func(t *testing.T) {
		log, err := logger.New(logger.Config{})
		require.NoError(t, err)

		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		log, err := logger.New(logger.Config{Level: "loud"})
		require.NoError(t, err)

		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("writes json to the output path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")

		log, err := logger.New(logger.Config{Level: "debug", Encoding: "yaml", OutputPath: path})
		require.NoError(t, err)

		log.Debug("hello")
		require.NoError(t, log.Sync())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"hello"`)
		assert.Contains(t, string(data), `"level":"DEBUG"`)
	})
}
