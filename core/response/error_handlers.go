package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/typedmultipart/core/handler"
	"github.com/dmitrymomot/typedmultipart/core/part"
	"github.com/dmitrymomot/typedmultipart/core/partmap"
)

// Machine-readable codes of request content failures.
const (
	CodeFieldNotFound = "field_not_found"
	CodeInvalidUTF8   = "invalid_utf8"
	CodeInvalidValue  = "invalid_value"
	CodeInvalidJSON   = "invalid_json"
	CodeMalformedBody = "malformed_body"
)

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// FromError converts any error to an HTTPError.
// Request content failures map to 4xx with a specific code and the message of
// the underlying error; Details["field"] names the offending part when known.
// Other errors use their StatusCode() when implemented and 500 otherwise.
func FromError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, partmap.ErrPartTooLarge), errors.Is(err, partmap.ErrTooManyParts):
		return ErrRequestEntityTooLarge.WithMessage(err.Error())
	case errors.Is(err, partmap.ErrMalformedBody):
		return ErrBadRequest.WithCode(CodeMalformedBody).WithMessage(err.Error())
	}

	var nf *part.NotFoundError
	if errors.As(err, &nf) {
		return ErrBadRequest.
			WithCode(CodeFieldNotFound).
			WithMessage(err.Error()).
			WithDetail("field", nf.Field)
	}

	var convErr *part.ConversionError
	if errors.As(err, &convErr) {
		e := ErrBadRequest.WithCode(conversionCode(convErr.Stage)).WithMessage(err.Error())
		var decErr *partmap.DecodeError
		if errors.As(err, &decErr) {
			e = e.WithDetail("field", decErr.Field)
		}
		return e
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	base := errorForStatus(status)
	if status < http.StatusInternalServerError {
		return base.WithMessage(err.Error())
	}
	return base.WithError(err)
}

func conversionCode(stage part.Stage) string {
	switch stage {
	case part.StageUTF8:
		return CodeInvalidUTF8
	case part.StageDecode:
		return CodeInvalidJSON
	default:
		return CodeInvalidValue
	}
}

// ErrorHandler is the default error handler that returns plain text errors.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := FromError(err)
	Render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler returns errors as JSON responses.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := FromError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}
