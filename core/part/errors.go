package part

import (
	"errors"
	"fmt"
	"net/http"
)

// Errors reported by the single-character rule.
var (
	ErrEmptyString  = errors.New("cannot parse char from empty string")
	ErrTooManyChars = errors.New("too many characters in string")
)

// Stage identifies the conversion step that failed.
type Stage uint8

const (
	// StageUTF8 means the payload is not valid UTF-8.
	StageUTF8 Stage = iota + 1
	// StageParse means the text could not be parsed as the target type.
	StageParse
	// StageDecode means a structured decoder (JSON) rejected the payload.
	StageDecode
)

// String returns the stage name used in logs and error codes.
func (s Stage) String() string {
	switch s {
	case StageUTF8:
		return "utf8"
	case StageParse:
		return "parse"
	case StageDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// ConversionError describes a part payload that could not be converted.
type ConversionError struct {
	Target string // target type name, e.g. "int32"
	Stage  Stage
	Err    error
}

// Error implements the error interface.
// Structured decoder errors are reported verbatim.
func (e *ConversionError) Error() string {
	switch e.Stage {
	case StageUTF8:
		return fmt.Sprintf("could not convert the value to UTF-8: %v", e.Err)
	case StageDecode:
		return e.Err.Error()
	default:
		return fmt.Sprintf("could not parse the value as %s: %v", e.Target, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// StatusCode reports the payload as a client error.
func (e *ConversionError) StatusCode() int {
	return http.StatusBadRequest
}

// NotFoundError is returned by the default absence policy.
type NotFoundError struct {
	Field string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("the field `%s` was not found in the request", e.Field)
}

// StatusCode reports the missing field as a client error.
func (e *NotFoundError) StatusCode() int {
	return http.StatusBadRequest
}

// IsStage reports whether err carries a ConversionError for the given stage.
func IsStage(err error, stage Stage) bool {
	var convErr *ConversionError
	return errors.As(err, &convErr) && convErr.Stage == stage
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var nfErr *NotFoundError
	return errors.As(err, &nfErr)
}

// errInvalidUTF8 is the cause attached to StageUTF8 failures.
var errInvalidUTF8 = errors.New("invalid utf-8 sequence")

func utf8Error(target string) error {
	return &ConversionError{Target: target, Stage: StageUTF8, Err: errInvalidUTF8}
}

func parseError(target string, err error) error {
	return &ConversionError{Target: target, Stage: StageParse, Err: err}
}
