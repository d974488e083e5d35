package handler

import "net/http"

// Response is a function that renders HTTP responses.
// It sets headers, status code, and writes the response body.
// Rendering errors are handled by the framework's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a type-safe HTTP request handler with custom context support.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler handles errors during request processing.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps handlers to add cross-cutting functionality.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]

// Handler adapts a HandlerFunc to http.Handler. newCtx builds the context of
// each request and onError receives errors returned by the rendered response.
func Handler[C Context](h HandlerFunc[C], newCtx func(w http.ResponseWriter, r *http.Request) C, onError ErrorHandler[C], middlewares ...Middleware[C]) http.Handler {
	// Apply middleware in reverse order so the first one runs outermost
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := newCtx(w, r)
		resp := h(ctx)
		if resp == nil {
			return
		}
		if err := resp(w, r); err != nil && onError != nil {
			onError(ctx, err)
		}
	})
}
