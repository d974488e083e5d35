package binder

import "net/http"

// bindError is a request-level binding failure with a fixed HTTP status.
type bindError struct {
	msg    string
	status int
}

func (e *bindError) Error() string   { return e.msg }
func (e *bindError) StatusCode() int { return e.status }

// Error variables define common binding failures that can occur during request processing.
// Each implements StatusCode() int, so response.FromError maps them without a type switch.
var (
	// ErrUnsupportedMediaType indicates the Content-Type header specifies a media type
	// other than multipart/form-data.
	ErrUnsupportedMediaType error = &bindError{"unsupported media type", http.StatusUnsupportedMediaType}

	// ErrFailedToParseForm indicates the multipart header could not be parsed
	// or carries an unusable boundary.
	ErrFailedToParseForm error = &bindError{"failed to parse form data", http.StatusBadRequest}

	// ErrMissingContentType indicates the request lacks a Content-Type header.
	ErrMissingContentType error = &bindError{"missing content type", http.StatusBadRequest}
)
