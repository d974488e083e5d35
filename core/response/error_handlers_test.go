package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/typedmultipart/core/handler"
	"github.com/dmitrymomot/typedmultipart/core/part"
	"github.com/dmitrymomot/typedmultipart/core/partmap"
	"github.com/dmitrymomot/typedmultipart/core/response"
)

// customStatusError is a test error that implements StatusCode() int
type customStatusError struct {
	message string
	status  int
}

func (e customStatusError) Error() string {
	return e.message
}

func (e customStatusError) StatusCode() int {
	return e.status
}

func decodeErr(t *testing.T, key string, raw []byte, conv func(m *partmap.Map) error) error {
	t.Helper()
	m := partmap.FromValues(map[string][]byte{key: raw})
	err := conv(m)
	require.Error(t, err)
	return err
}

func TestFromError(t *testing.T) {
	t.Parallel()

	m := partmap.FromStrings(nil)
	_, missing := partmap.Get(m, "id", part.Uint[uint32]())

	invalid := decodeErr(t, "id", []byte("forty-two"), func(m *partmap.Map) error {
		_, err := partmap.Get(m, "id", part.Uint[uint32]())
		return err
	})
	badUTF8 := decodeErr(t, "title", []byte{0xff}, func(m *partmap.Map) error {
		_, err := partmap.Get(m, "title", part.String())
		return err
	})
	badJSON := decodeErr(t, "meta", []byte(`{`), func(m *partmap.Map) error {
		_, err := partmap.Get(m, "meta", part.JSON[map[string]any]())
		return err
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantField  string
	}{
		{"missing field", missing, http.StatusBadRequest, response.CodeFieldNotFound, "id"},
		{"invalid value", invalid, http.StatusBadRequest, response.CodeInvalidValue, "id"},
		{"invalid utf-8", badUTF8, http.StatusBadRequest, response.CodeInvalidUTF8, "title"},
		{"invalid json", badJSON, http.StatusBadRequest, response.CodeInvalidJSON, "meta"},
		{
			"malformed body",
			fmt.Errorf("%w: unexpected EOF", partmap.ErrMalformedBody),
			http.StatusBadRequest, response.CodeMalformedBody, "",
		},
		{
			"part too large",
			fmt.Errorf("field bio: %w", partmap.ErrPartTooLarge),
			http.StatusRequestEntityTooLarge, "request_entity_too_large", "",
		},
		{"too many parts", partmap.ErrTooManyParts, http.StatusRequestEntityTooLarge, "request_entity_too_large", ""},
		{
			"status code interface",
			fmt.Errorf("bind: %w", customStatusError{message: "wrong type", status: http.StatusUnsupportedMediaType}),
			http.StatusUnsupportedMediaType, "unsupported_media_type", "",
		},
		{
			"unregistered status",
			customStatusError{message: "short and stout", status: http.StatusTeapot},
			http.StatusTeapot, "http_418", "",
		},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "internal_server_error", ""},
		{
			"http error passes through",
			response.ErrUnprocessableEntity.WithMessage("nope"),
			http.StatusUnprocessableEntity, "unprocessable_entity", "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := response.FromError(tt.err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantStatus, got.StatusCode())
			assert.Equal(t, tt.wantCode, got.Code)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, got.Details["field"])
			} else {
				assert.NotContains(t, got.Details, "field")
			}
		})
	}
}

func TestFromError_Messages(t *testing.T) {
	t.Parallel()

	_, err := partmap.Get(partmap.FromStrings(nil), "id", part.String())
	assert.Equal(t, "the field `id` was not found in the request", response.FromError(err).Message)

	internal := response.FromError(errors.New("database is down"))
	assert.Equal(t, "Internal Server Error", internal.Message)
	assert.Equal(t, "database is down", internal.Details["cause"])

	// Predefined errors are never mutated by detail helpers.
	_ = response.ErrBadRequest.WithDetail("field", "x")
	assert.Nil(t, response.ErrBadRequest.Details)
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "regular error returns 500",
			err:            errors.New("internal error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal Server Error",
		},
		{
			name:           "missing field",
			err:            &part.NotFoundError{Field: "title"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "the field `title` was not found in the request",
		},
		{
			name:           "HTTPError with 415",
			err:            response.ErrUnsupportedMediaType.WithMessage("expected multipart/form-data"),
			expectedStatus: http.StatusUnsupportedMediaType,
			expectedBody:   "expected multipart/form-data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/test", nil)
			w := httptest.NewRecorder()

			response.ErrorHandler(handler.New(w, req), tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestJSONErrorHandler(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	w := httptest.NewRecorder()

	_, err := partmap.Get(partmap.FromStrings(map[string]string{"id": "x"}), "id", part.Int[int]())
	response.JSONErrorHandler(handler.New(w, req), err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid_value", body["code"])
	assert.Contains(t, body["message"], "failed to decode field `id`")
	assert.Equal(t, map[string]any{"field": "id"}, body["details"])
}

func TestJSONWithStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		v          any
		status     int
		wantStatus int
		wantBody   string
	}{
		{"explicit status", map[string]int{"id": 1}, http.StatusCreated, http.StatusCreated, "{\"id\":1}\n"},
		{"zero status with data", "ok", 0, http.StatusOK, "\"ok\"\n"},
		{"zero status without data", nil, 0, http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			require.NoError(t, response.JSONWithStatus(tt.v, tt.status)(w, httptest.NewRequest(http.MethodGet, "/", nil)))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("writes response", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		response.Render(handler.New(w, httptest.NewRequest(http.MethodGet, "/", nil)), response.String("hi"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hi", w.Body.String())
	})

	t.Run("response error becomes 500", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		response.Render(handler.New(w, httptest.NewRequest(http.MethodGet, "/", nil)), response.Error(errors.New("broken")))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "broken\n", w.Body.String())
	})
}

func TestHTTPError_With(t *testing.T) {
	t.Parallel()

	t.Run("details replace existing ones", func(t *testing.T) {
		t.Parallel()
		err := response.ErrBadRequest.WithDetail("field", "id").WithDetails(map[string]any{"parts": 3})
		assert.Equal(t, map[string]any{"parts": 3}, err.Details)
		assert.Equal(t, http.StatusBadRequest, err.StatusCode())
	})

	t.Run("predefined errors are not mutated", func(t *testing.T) {
		t.Parallel()
		err := response.ErrBadRequest.WithCode("custom").WithMessage("custom message").WithDetail("field", "id")
		assert.Equal(t, "custom", err.Code)
		assert.Equal(t, "custom message", err.Error())
		assert.NotEqual(t, "custom", response.ErrBadRequest.Code)
		assert.Empty(t, response.ErrBadRequest.Details)
	})
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	require.NoError(t, response.NoContent()(w, httptest.NewRequest(http.MethodDelete, "/posts/1", nil)))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
