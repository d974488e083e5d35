// Package response renders handler.Response values and maps errors to HTTP
// responses.
//
// Handlers return a response function instead of writing to the
// http.ResponseWriter directly:
//
//	func createPost(ctx handler.Context, body CreatePost) handler.Response {
//		return response.JSONWithStatus(body, http.StatusCreated)
//	}
//
// Errors are converted by FromError. Decode failures of multipart bodies map to
// 400 Bad Request with a specific code:
//
//	field_not_found  a required part is missing
//	invalid_utf8     a text part is not valid UTF-8
//	invalid_value    a part cannot be parsed as the field type
//	invalid_json     a json part cannot be decoded
//	malformed_body   the multipart stream is broken
//
// Size limits map to 413 and media type problems to 415. Any other error
// implementing StatusCode() int uses that status; everything else becomes a
// 500 with the cause in Details.
//
// ErrorHandler writes the message as plain text, JSONErrorHandler writes the
// HTTPError as JSON:
//
//	{"code":"field_not_found","message":"the field `id` was not found in the request","details":{"field":"id"}}
package response
