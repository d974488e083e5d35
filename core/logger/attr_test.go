package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/typedmultipart/core/logger"
)

// ============================================================================
// Error Handling Tests
// ============================================================================

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

// ============================================================================
// Decoding Tests
// ============================================================================

type stage string

func (s stage) String() string { return string(s) }

func TestDecodingAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want string
	}{
		{"field", logger.Field("title"), "field", "title"},
		{"stage", logger.Stage(stage("utf8")), "stage", "utf8"},
		{"record", logger.Record("CreatePost"), "record", "CreatePost"},
		{"content type", logger.ContentType("multipart/form-data"), "content_type", "multipart/form-data"},
		{"method", logger.Method("POST"), "method", "POST"},
		{"path", logger.Path("/posts"), "path", "/posts"},
		{"component", logger.Component("binder"), "component", "binder"},
		{"file", logger.File("post_multipart.go"), "file", "post_multipart.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.String())
		})
	}

	assert.True(t, logger.Field("").Equal(slog.Attr{}))
	assert.True(t, logger.ContentType("").Equal(slog.Attr{}))
	assert.True(t, logger.Stage(nil).Equal(slog.Attr{}))

	parts := logger.Parts(3)
	assert.Equal(t, "parts", parts.Key)
	assert.Equal(t, int64(3), parts.Value.Int64())

	count := logger.Count("records", 2)
	assert.Equal(t, "records", count.Key)
	assert.Equal(t, int64(2), count.Value.Int64())

	kv := logger.Key("k", 1.5)
	assert.Equal(t, "k", kv.Key)
	assert.InDelta(t, 1.5, kv.Value.Float64(), 0)
}

// ============================================================================
// Logger Tests
// ============================================================================

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output with attrs", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithJSON(),
			logger.WithLevel(slog.LevelDebug),
			logger.WithAttrs(logger.Component("test")),
		)

		log.Debug("decoded", logger.Field("id"), logger.Error(nil))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "decoded", rec["msg"])
		assert.Equal(t, "test", rec["component"])
		assert.Equal(t, "id", rec["field"])
		assert.NotContains(t, rec, "error")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Debug("hidden")
		assert.Empty(t, buf.String())

		log.Info("shown")
		assert.Contains(t, buf.String(), "msg=shown")
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}
