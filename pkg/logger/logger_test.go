package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tabula/pkg/logger"
)

type requestIDKey struct{}

func TestNewWithConfig(t *testing.T) {
	t.Parallel()

	t.Run("json with extractors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithConfig(logger.Config{Level: "debug"}, &buf,
			logger.FromContextValue(requestIDKey{}, "request_id"),
			nil,
		)

		ctx := context.WithValue(context.Background(), requestIDKey{}, "req-1")
		log.DebugContext(ctx, "table configured", slog.String("table", "users"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "DEBUG", rec["level"])
		assert.Equal(t, "table configured", rec["msg"])
		assert.Equal(t, "users", rec["table"])
		assert.Equal(t, "req-1", rec["request_id"])
	})

	t.Run("text format and level filtering", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithConfig(logger.Config{Level: "warn", Format: "text"}, &buf)

		log.Info("hidden")
		log.Warn("shown")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "msg=shown")
		assert.Equal(t, 1, strings.Count(out, "\n"))
	})

	t.Run("missing context value is skipped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithConfig(logger.Config{}, &buf, logger.FromContextValue(requestIDKey{}, "request_id"))
		log.InfoContext(context.Background(), "hello")

		assert.NotContains(t, buf.String(), "request_id")
	})

	t.Run("with attrs and groups keep extractors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithConfig(logger.Config{}, &buf, logger.FromContextValue(requestIDKey{}, "request_id")).
			With(slog.String("component", "tabula"))

		ctx := context.WithValue(context.Background(), requestIDKey{}, "req-2")
		log.InfoContext(ctx, "rendered")

		assert.Contains(t, buf.String(), `"component":"tabula"`)
		assert.Contains(t, buf.String(), `"request_id":"req-2"`)
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("loud"))
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	log.Error("discarded")
}
