// Package typedmultipart decodes multipart/form-data request bodies into typed
// Go records. A body is drained once into a map of part name to bytes, and
// every record field is converted from its part by a per-type rule that also
// decides what happens when the part is missing.
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/typedmultipart/core/part
//	go doc -all github.com/dmitrymomot/typedmultipart/core/binder
//
// # Core Packages
//
//	github.com/dmitrymomot/typedmultipart/core/part     - Conversion rules, absent-field policies and the rule registry
//	github.com/dmitrymomot/typedmultipart/core/partmap  - Field map built from a multipart reader, typed field queries
//	github.com/dmitrymomot/typedmultipart/core/decoder  - Record decoding through generated methods or compiled schemas
//	github.com/dmitrymomot/typedmultipart/core/binder   - HTTP request binding and typed handler wrappers
//	github.com/dmitrymomot/typedmultipart/core/handler  - Type-safe HTTP handler abstractions
//	github.com/dmitrymomot/typedmultipart/core/response - HTTP responses and mapping of decode failures to status codes
//	github.com/dmitrymomot/typedmultipart/core/logger   - Structured logging built on slog
//	github.com/dmitrymomot/typedmultipart/core/config   - Type-safe environment variable loading
//
// # Code Generation
//
//	github.com/dmitrymomot/typedmultipart/cmd/multipartgen - Generates DecodeMultipart methods for record types
//
// # Quick Start
//
//	//go:generate go run github.com/dmitrymomot/typedmultipart/cmd/multipartgen -type CreatePost
//
//	type CreatePost struct {
//		ID       uint32
//		Title    string
//		FullName string  `multipart:"full_name"`
//		Note     *string `multipart:"note"`
//	}
//
//	mux.Handle("POST /posts", handler.Handler(
//		binder.Typed(func(ctx handler.Context, body CreatePost) handler.Response {
//			return response.JSONWithStatus(body, http.StatusCreated)
//		}),
//		handler.New,
//		response.JSONErrorHandler[handler.Context],
//	))
package typedmultipart
