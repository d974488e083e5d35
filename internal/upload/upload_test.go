package upload_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/typedmultipart/core/binder"
	"github.com/dmitrymomot/typedmultipart/core/decoder"
	"github.com/dmitrymomot/typedmultipart/core/handler"
	"github.com/dmitrymomot/typedmultipart/core/part"
	"github.com/dmitrymomot/typedmultipart/core/partmap"
	"github.com/dmitrymomot/typedmultipart/core/response"
	"github.com/dmitrymomot/typedmultipart/internal/formtest"
	"github.com/dmitrymomot/typedmultipart/internal/upload"
)

var postID = uuid.MustParse("8b0f5c0e-6a43-4c6a-9a55-3f2f7f9b2d10")

func postValues() map[string][]byte {
	return map[string][]byte{
		"id":           []byte(postID.String()),
		"title":        []byte("Hello"),
		"full_name":    []byte("Ada Lovelace"),
		"rating":       []byte("5"),
		"initial":      []byte("A"),
		"meta":         []byte(`{"tags":["math"],"draft":true}`),
		"cover":        {0x89, 'P', 'N', 'G'},
		"published_at": []byte("2024-05-01T10:00:00Z"),
		"internal":     []byte("ignored"),
	}
}

func TestCreatePost_GeneratedMatchesReflective(t *testing.T) {
	t.Parallel()

	// The generated method is an implementation detail; the reflective schema
	// must produce the same record and the same errors.
	type reflective upload.CreatePost
	schema := decoder.MustCompile[reflective](part.Default)

	cases := map[string]func(map[string][]byte){
		"complete":         func(map[string][]byte) {},
		"optional missing": func(v map[string][]byte) { delete(v, "rating") },
		"required missing": func(v map[string][]byte) { delete(v, "title") },
		"bad uuid":         func(v map[string][]byte) { v["id"] = []byte("nope") },
		"bad json":         func(v map[string][]byte) { v["meta"] = []byte(`{"tags":`) },
		"two chars":        func(v map[string][]byte) { v["initial"] = []byte("AB") },
		"bad time":         func(v map[string][]byte) { v["published_at"] = []byte("yesterday") },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			values := postValues()
			mutate(values)
			m := partmap.FromValues(values)

			var generated upload.CreatePost
			genErr := generated.DecodeMultipart(m)
			refl, reflErr := schema.Decode(m)

			if genErr != nil || reflErr != nil {
				require.Error(t, genErr)
				require.Error(t, reflErr)
				assert.Equal(t, reflErr.Error(), genErr.Error())
				return
			}
			if diff := cmp.Diff(generated, upload.CreatePost(refl)); diff != "" {
				t.Errorf("generated and reflective decoding differ (-generated +reflective):\n%s", diff)
			}
		})
	}
}

func TestCreatePost_Decode(t *testing.T) {
	t.Parallel()

	got, err := decoder.Decode[upload.CreatePost](partmap.FromValues(postValues()))
	require.NoError(t, err)

	rating := uint8(5)
	want := upload.CreatePost{
		ID:          postID,
		Title:       "Hello",
		FullName:    "Ada Lovelace",
		Rating:      &rating,
		Initial:     'A',
		Meta:        upload.Meta{Tags: []string{"math"}, Draft: true},
		Cover:       []byte{0x89, 'P', 'N', 'G'},
		PublishedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestAttachment_Endpoint(t *testing.T) {
	t.Parallel()

	h := handler.Handler(
		binder.Typed(func(ctx handler.Context, a upload.Attachment) handler.Response {
			return response.JSONWithStatus(map[string]any{
				"name":     a.Name,
				"size":     a.Size,
				"body":     len(a.Body),
				"checksum": a.Checksum,
			}, http.StatusCreated)
		}, partmap.WithMaxPartSize(1<<10)),
		handler.New,
		response.JSONErrorHandler[handler.Context],
	)

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		h.ServeHTTP(w, formtest.Request(t, "/attachments",
			formtest.Text("name", "notes.txt"),
			formtest.Text("size", "5"),
			formtest.File("body", "notes.txt", []byte("hello")),
		))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"name":"notes.txt","size":5,"body":5,"checksum":null}`, w.Body.String())
	})

	t.Run("missing field", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		h.ServeHTTP(w, formtest.Request(t, "/attachments",
			formtest.Text("name", "notes.txt"),
			formtest.File("body", "notes.txt", []byte("hello")),
		))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body response.HTTPError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, response.CodeFieldNotFound, body.Code)
		assert.Equal(t, "the field `size` was not found in the request", body.Message)
		assert.Equal(t, "size", body.Details["field"])
	})

	t.Run("part too large", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		h.ServeHTTP(w, formtest.Request(t, "/attachments",
			formtest.Text("name", "big.bin"),
			formtest.Text("size", "2048"),
			formtest.File("body", "big.bin", make([]byte, 2048)),
		))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
