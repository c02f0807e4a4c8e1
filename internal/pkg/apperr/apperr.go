// Package apperr defines the closed set of error kinds the service layer
// raises. Handlers map kinds to HTTP status codes; usecases never return a
// bare error for a domain failure.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// Error is a tagged application error with an optional list of
// contributing reasons.
type Error struct {
	Kind    Kind
	Message string
	Reasons []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap supports errors.Is/errors.As chains
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind
func New(kind Kind, message string, reasons ...string) *Error {
	return &Error{Kind: kind, Message: message, Reasons: reasons}
}

// Wrap attaches a cause to an error of the given kind
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// BadRequest creates a bad request error
func BadRequest(message string, reasons ...string) *Error {
	return New(KindBadRequest, message, reasons...)
}

// Unauthorized creates an unauthorized error
func Unauthorized(message string, reasons ...string) *Error {
	return New(KindUnauthorized, message, reasons...)
}

// Forbidden creates a forbidden error
func Forbidden(message string, reasons ...string) *Error {
	return New(KindForbidden, message, reasons...)
}

// NotFound creates a not found error
func NotFound(message string, reasons ...string) *Error {
	return New(KindNotFound, message, reasons...)
}

// Conflict creates a conflict error
func Conflict(message string, reasons ...string) *Error {
	return New(KindConflict, message, reasons...)
}

// Internal wraps an unexpected failure
func Internal(message string, err error) *Error {
	return Wrap(KindInternal, message, err)
}

// KindOf returns the kind of err, or KindInternal for untagged errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error kind to its HTTP status code
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
