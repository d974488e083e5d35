package partmap

import (
	"errors"
	"fmt"
	"net/http"
)

// Error variables describe failures while draining a multipart body.
var (
	// ErrMalformedBody indicates the body could not be split into parts or a
	// part payload could not be read.
	ErrMalformedBody = errors.New("malformed multipart body")

	// ErrPartTooLarge indicates a single part payload exceeded the configured limit.
	ErrPartTooLarge = errors.New("multipart part too large")

	// ErrTooManyParts indicates the body carried more parts than allowed.
	ErrTooManyParts = errors.New("too many multipart parts")
)

// DecodeError reports a part that was present but could not be converted.
type DecodeError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode field `%s`: %v", e.Field, e.Err)
}

// Unwrap returns the conversion error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StatusCode reports the failure as a client error.
func (e *DecodeError) StatusCode() int {
	return http.StatusBadRequest
}
