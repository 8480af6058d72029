// Package apperrors provides the standardized error contract for the service.
//
// Every expected failure is an *Error carrying the HTTP status it maps to and
// the message the client is allowed to see. Anything else that reaches the
// request boundary is rendered as a generic 500.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a structured application error.
type Error struct {
	Status  int    // HTTP status the error maps to
	Message string // user-facing message
	Err     error  // wrapped cause, never rendered to clients
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithError returns a copy of the error wrapping the given cause.
// Predefined errors are shared values, so the receiver is not mutated.
func (e *Error) WithError(err error) *Error {
	return &Error{Status: e.Status, Message: e.Message, Err: err}
}

// Is makes predefined errors comparable through errors.Is even after
// WithError copied them.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.Message == t.Message
}

// New creates a new Error.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Validation creates a 400 error for malformed or missing input.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// NotFound creates a 404 error for an absent entity.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Conflict creates a 409 error for a uniqueness violation.
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// Resolution creates a 502 error for an external lookup failure.
func Resolution(message string) *Error {
	return New(http.StatusBadGateway, message)
}

// Unexpected creates a 500 error for a store or invariant failure.
func Unexpected(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// StatusOf returns the HTTP status code for an error.
// Errors that are not an *Error map to 500.
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	return appErr.Status
}
