package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/backend/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("json format includes static attrs", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "api")),
		)

		log.Info("started", logger.Component("server"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "started", record["msg"])
		assert.Equal(t, "api", record["service"])
		assert.Equal(t, "server", record["component"])
	})

	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithLevel(slog.LevelWarn),
		)

		log.Info("dropped")
		assert.Zero(t, buf.Len())

		log.Warn("kept")
		assert.NotZero(t, buf.Len())
	})
}

func TestNewFromConfig(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewFromConfig(
		logger.Config{Level: "debug", Format: logger.FormatText},
		logger.WithOutput(&buf),
	)

	log.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestAttrHelpers(t *testing.T) {
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.Equal(t, "user_id", logger.UserID("abc").Key)
	assert.True(t, logger.UserID(nil).Equal(slog.Attr{}))
}
