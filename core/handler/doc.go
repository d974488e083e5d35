// Package handler defines the host framework contracts that typed request
// extractors plug into: a request Context, a Response renderer, type-safe
// HandlerFunc values with custom contexts, error handlers and middleware.
//
//	h := handler.Handler(
//		binder.Typed(func(ctx handler.Context, body CreatePost) handler.Response {
//			return response.JSON(body)
//		}),
//		handler.New,
//		response.JSONErrorHandler[handler.Context],
//	)
//	mux.Handle("POST /posts", h)
//
// Errors returned by a Response are passed to the ErrorHandler, which is
// responsible for mapping them to a status code.
package handler
