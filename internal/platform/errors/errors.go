// Package errors is the coded error shared by the converter, the session
// store and the HTTP layer. Import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies a failure for callers and the wire; values are stable
type ErrorCode uint16

const (
	// ErrorCodeUnknown is anything we did not classify
	ErrorCodeUnknown ErrorCode = iota
	// ErrorCodePanic is a handler panic caught by the recover middleware
	ErrorCodePanic
	// ErrorCodeJSON is a body that is not decodable JSON
	ErrorCodeJSON
	// ErrorCodeValidation is a decoded body that failed its validate tags
	ErrorCodeValidation
	// ErrorCodeInvalidArgument is a malformed session id, amount text or bound
	ErrorCodeInvalidArgument
	// ErrorCodeUnauthorized is a missing or wrong bearer token
	ErrorCodeUnauthorized
	// ErrorCodeNotFound is an unknown or closed session
	ErrorCodeNotFound
	// ErrorCodeTooManyRequests is the session cap or the in flight limit
	ErrorCodeTooManyRequests
)

var codeNames = [...]string{
	ErrorCodeUnknown:         "unknown",
	ErrorCodePanic:           "panic",
	ErrorCodeJSON:            "json",
	ErrorCodeValidation:      "validation",
	ErrorCodeInvalidArgument: "invalid_argument",
	ErrorCodeUnauthorized:    "unauthorized",
	ErrorCodeNotFound:        "not_found",
	ErrorCodeTooManyRequests: "too_many_requests",
}

// String names the code for logs
func (c ErrorCode) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// Status maps the code onto an HTTP status
func (c ErrorCode) Status() int {
	switch c {
	case ErrorCodeJSON, ErrorCodeValidation:
		return http.StatusBadRequest
	case ErrorCodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Common field names attached with WithField
const (
	FieldSessionID = "id"
	FieldValue     = "value"
	FieldMin       = "min"
	FieldMax       = "max"
)

// Error carries a code, a message, the offending field and an optional cause
type Error struct {
	code  ErrorCode
	msg   string
	field string
	cause error
}

// Wire is the error part of the response envelope
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap returns the cause
func (e *Error) Unwrap() error { return e.cause }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field or ""
func (e *Error) Field() string { return e.field }

// Newf builds an *Error with a formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrapf builds an *Error around cause
func Wrapf(cause error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), cause: cause}
}

// NotFoundf builds a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf builds an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// JSONErrf builds a malformed body error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// Unauthorizedf builds an unauthorized error
func Unauthorizedf(format string, a ...any) error { return Newf(ErrorCodeUnauthorized, format, a...) }

// TooManyf builds a too many requests error
func TooManyf(format string, a ...any) error { return Newf(ErrorCodeTooManyRequests, format, a...) }

// WithField returns a copy of err naming field; foreign errors pass through
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// As finds the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns err's code, Unknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus maps any error onto an HTTP status
func HTTPStatus(err error) int { return CodeOf(err).Status() }

// WireFrom renders any error for the envelope; foreign errors keep their text
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg, Field: e.field}
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// Root walks to the innermost cause
func Root(err error) error {
	for {
		next := stderrs.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
