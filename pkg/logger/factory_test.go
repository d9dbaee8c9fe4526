package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emailguess/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("app", "emailguess")))
		log.Info("hello")
		assert.Equal(t, "emailguess", decode(t, buf)["app"])
	})

	t.Run("context value", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("trace", ctxKey{}))
		ctx := context.WithValue(context.Background(), ctxKey{}, "abc")
		log.InfoContext(ctx, "hello")
		assert.Equal(t, "abc", decode(t, buf)["trace"])
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("environment defaults", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithEnvironment("prod", "svc"))
		log.Debug("dropped")
		log.Info("kept")
		entry := decode(t, buf)
		assert.Equal(t, "production", entry["env"])
		assert.Equal(t, "svc", entry["service"])
	})

	t.Run("discard", func(t *testing.T) {
		assert.NotPanics(t, func() { logger.Discard().Error("nothing") })
	})
}

func TestConfigOptions(t *testing.T) {
	t.Run("overrides", func(t *testing.T) {
		opts, err := logger.Config{Env: "development", Level: "warn", Format: "json"}.Options("svc")
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		log := logger.New(append(opts, logger.WithOutput(buf))...)
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "development", decode(t, buf)["env"])
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := logger.Config{Level: "loud"}.Options("svc")
		assert.ErrorIs(t, err, logger.ErrInvalidConfig)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := logger.Config{Format: "xml"}.Options("svc")
		assert.ErrorIs(t, err, logger.ErrInvalidConfig)
	})
}

func TestAttrs(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)
	assert.Equal(t, "j***@corp.io", logger.Address("jdoe@corp.io").Value.String())
	assert.Equal(t, "checker", logger.Checker("mx").Key)
	assert.Equal(t, int64(3), logger.Count(3).Value.Int64())
}
