package binder

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/typedmultipart/core/part"
	"github.com/dmitrymomot/typedmultipart/core/partmap"
	"github.com/dmitrymomot/typedmultipart/internal/formtest"
)

func TestLogFailure(t *testing.T) {
	t.Parallel()

	record := func(t *testing.T, m *partmap.Map, err error) map[string]any {
		t.Helper()
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		req := formtest.Request(t, "/posts", formtest.Text("title", "Hello"))
		logFailure(context.Background(), log, req, "CreatePost", m, err)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		return rec
	}

	t.Run("decode failure", func(t *testing.T) {
		t.Parallel()
		m := partmap.FromStrings(map[string]string{"title": "Hello", "id": "x"})
		_, err := partmap.Get(m, "id", part.Uint[uint32]())

		rec := record(t, m, err)
		assert.Equal(t, "multipart decode failed", rec["msg"])
		assert.Equal(t, "binder", rec["component"])
		assert.Equal(t, "CreatePost", rec["record"])
		assert.Equal(t, "POST", rec["method"])
		assert.Equal(t, "/posts", rec["path"])
		assert.Contains(t, rec["content_type"], "multipart/form-data; boundary=")
		assert.InDelta(t, 2, rec["parts"], 0)
		assert.Equal(t, "id", rec["field"])
		assert.Equal(t, "parse", rec["stage"])
	})

	t.Run("body not drained", func(t *testing.T) {
		t.Parallel()
		rec := record(t, nil, ErrUnsupportedMediaType)
		assert.NotContains(t, rec, "parts")
		assert.NotContains(t, rec, "field")
		assert.Equal(t, "unsupported media type", rec["error"])
	})
}
