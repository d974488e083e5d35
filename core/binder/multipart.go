package binder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"reflect"
	"slices"
	"sync"

	"github.com/dmitrymomot/typedmultipart/core/config"
	"github.com/dmitrymomot/typedmultipart/core/decoder"
	"github.com/dmitrymomot/typedmultipart/core/handler"
	"github.com/dmitrymomot/typedmultipart/core/logger"
	"github.com/dmitrymomot/typedmultipart/core/part"
	"github.com/dmitrymomot/typedmultipart/core/partmap"
	"github.com/dmitrymomot/typedmultipart/core/response"
)

// Multipart creates a binder for multipart/form-data bodies.
// v must be a non-nil pointer to a record struct; it is only modified when
// every field decodes.
//
// Example:
//
//	type CreatePost struct {
//		ID    uint32
//		Title string
//		Cover []byte  `multipart:"cover"`
//		Note  *string `multipart:"note"`
//	}
//
//	func createPost(w http.ResponseWriter, r *http.Request) {
//		var req CreatePost
//		if err := binder.Multipart()(r, &req); err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//	}
func Multipart(opts ...partmap.Option) Binder {
	return func(r *http.Request, v any) error {
		m, err := Parts(r, opts...)
		if err != nil {
			return err
		}
		return decoder.Into(m, v)
	}
}

// defaultOptions holds the draining limits read from MULTIPART_MAX_PART_SIZE
// and MULTIPART_MAX_PARTS on first use.
var defaultOptions = sync.OnceValue(func() []partmap.Option {
	var cfg partmap.Config
	if err := config.Load(&cfg); err != nil {
		slog.Warn("multipart limits not loaded from environment, using defaults",
			logger.Component("binder"),
			logger.Error(err),
		)
		cfg = partmap.DefaultConfig()
	}
	return cfg.Options()
})

// Parts validates the request headers and drains the body into a field map.
// Limits come from the environment; opts are applied after them and win.
func Parts(r *http.Request, opts ...partmap.Option) (*partmap.Map, error) {
	boundary, err := multipartBoundary(r)
	if err != nil {
		return nil, err
	}
	return partmap.New(r.Context(), multipart.NewReader(r.Body, boundary), slices.Concat(defaultOptions(), opts)...)
}

// Bind drains the request body and decodes it into a T.
func Bind[T any](r *http.Request, opts ...partmap.Option) (T, error) {
	m, err := Parts(r, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return decoder.Decode[T](m)
}

// Typed wraps fn into a handler that receives the decoded body of the request.
// When the body cannot be decoded, fn is not called and the error is passed to
// the error handler through response.FromError.
//
// Typed panics if T cannot be decoded at all (not a struct, embedded fields,
// field types without a rule), so declaration errors surface when routes are
// registered.
func Typed[C handler.Context, T any](fn func(ctx C, body T) handler.Response, opts ...partmap.Option) handler.HandlerFunc[C] {
	decoder.Must[T]()
	record := reflect.TypeFor[T]().Name()

	return func(ctx C) handler.Response {
		m, err := Parts(ctx.Request(), opts...)
		if err == nil {
			var body T
			if body, err = decoder.Decode[T](m); err == nil {
				return fn(ctx, body)
			}
		}
		logFailure(ctx, slog.Default(), ctx.Request(), record, m, err)
		return response.Error(response.FromError(err))
	}
}

// logFailure records a failed decode. m is nil when the body was not drained.
func logFailure(ctx context.Context, log *slog.Logger, r *http.Request, record string, m *partmap.Map, err error) {
	attrs := []slog.Attr{
		logger.Component("binder"),
		logger.Record(record),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.ContentType(r.Header.Get("Content-Type")),
		logger.Error(err),
	}
	if m != nil {
		attrs = append(attrs, logger.Parts(m.Len()))
	}

	var decErr *partmap.DecodeError
	var nf *part.NotFoundError
	switch {
	case errors.As(err, &decErr):
		attrs = append(attrs, logger.Field(decErr.Field))
	case errors.As(err, &nf):
		attrs = append(attrs, logger.Field(nf.Field))
	}

	var convErr *part.ConversionError
	if errors.As(err, &convErr) {
		attrs = append(attrs, logger.Stage(convErr.Stage))
	}

	log.LogAttrs(ctx, slog.LevelDebug, "multipart decode failed", attrs...)
}

func multipartBoundary(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", fmt.Errorf("%w: expected multipart/form-data", ErrMissingContentType)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: malformed content type: %v", ErrFailedToParseForm, err)
	}
	if mediaType != "multipart/form-data" {
		return "", fmt.Errorf("%w: got %s, expected multipart/form-data", ErrUnsupportedMediaType, mediaType)
	}

	// Parse and validate boundary parameter to prevent malformed multipart attacks
	boundary, ok := params["boundary"]
	if !ok || boundary == "" {
		return "", fmt.Errorf("%w: missing boundary in content type", ErrFailedToParseForm)
	}
	if !validateBoundary(boundary) {
		return "", fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
	}

	return boundary, nil
}

func validateBoundary(boundary string) bool {
	// Reject boundaries containing characters that break multipart parsing
	for _, r := range boundary {
		if r == '\x00' || r == '\r' || r == '\n' {
			return false
		}
	}

	// RFC 2046 caps boundaries at 70 characters
	return len(boundary) <= 70
}
