package dxt

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// ErrorCode classifies encoder API failures. All of them are precondition
// violations detected before any block work starts; the per-block fitting
// code itself has no failure modes.
type ErrorCode uint32

const (
	// Success is the code reported for a nil error.
	Success ErrorCode = 0

	// ErrBadFormat indicates an unspecified or unknown compression format.
	ErrBadFormat ErrorCode = 1

	// ErrBadGeometry indicates a non-positive width or height, or one that
	// is not a multiple of the 4 pixel block dimension.
	ErrBadGeometry ErrorCode = 2

	// ErrShortInput indicates a pixel buffer shorter than width*height.
	ErrShortInput ErrorCode = 3

	// ErrShortOutput indicates an output buffer smaller than the computed
	// compressed size. The message always carries the required size.
	ErrShortOutput ErrorCode = 4

	// ErrBadParam indicates an invalid argument outside the above classes.
	ErrBadParam ErrorCode = 5

	// ErrBadContext indicates misuse of a compression context.
	ErrBadContext ErrorCode = 6
)

// ErrorString returns the symbolic name for a code, or "" for unknown codes.
func ErrorString(code ErrorCode) string {
	switch code {
	case Success:
		return "SUCCESS"
	case ErrBadFormat:
		return "ERR_BAD_FORMAT"
	case ErrBadGeometry:
		return "ERR_BAD_GEOMETRY"
	case ErrShortInput:
		return "ERR_SHORT_INPUT"
	case ErrShortOutput:
		return "ERR_SHORT_OUTPUT"
	case ErrBadParam:
		return "ERR_BAD_PARAM"
	case ErrBadContext:
		return "ERR_BAD_CONTEXT"
	default:
		return ""
	}
}

// Error is a typed error carrying an ErrorCode plus a stack-carrying cause.
type Error struct {
	Code ErrorCode
	err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.err != nil {
		return e.err.Error()
	}
	if s := ErrorString(e.Code); s != "" {
		return "dxt: " + s
	}
	return "dxt: error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// ErrorCodeOf returns the code for err, or Success for nil.
//
// For non-*Error errors it returns ErrBadParam as a conservative fallback.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrBadParam
}

func newErrorf(code ErrorCode, format string, args ...interface{}) error {
	return &Error{Code: code, err: pkgerrors.Errorf(format, args...)}
}
