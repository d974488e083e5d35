// Package binder connects record decoding to HTTP handlers.
//
// Multipart returns a Binder that checks the Content-Type header, drains the
// multipart/form-data body into a partmap.Map and decodes it into a record:
//
//	var req CreatePost
//	if err := binder.Multipart()(r, &req); err != nil {
//		// errors implement StatusCode() int
//	}
//
// Bind does the same and returns the record by value:
//
//	post, err := binder.Bind[CreatePost](r, partmap.WithMaxPartSize(1<<20))
//
// Typed turns a function of the decoded body into a handler.HandlerFunc. The
// function only runs when the whole record decodes; otherwise the failure is
// logged at debug level and rendered through response.FromError:
//
//	mux.Handle("POST /posts", handler.Handler(
//		binder.Typed(func(ctx handler.Context, body CreatePost) handler.Response {
//			return response.JSONWithStatus(body, http.StatusCreated)
//		}),
//		handler.New,
//		response.JSONErrorHandler[handler.Context],
//	))
//
// Draining limits are read once from MULTIPART_MAX_PART_SIZE and
// MULTIPART_MAX_PARTS through core/config; options passed to Multipart, Parts,
// Bind or Typed override them.
//
// Header problems are reported as ErrMissingContentType, ErrUnsupportedMediaType
// (415) and ErrFailedToParseForm. Body and field failures come from partmap and
// part unchanged.
package binder
