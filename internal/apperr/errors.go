// Package apperr defines the error taxonomy shared across the service.
// Every I/O failure is wrapped into one of these codes at the call site so
// the HTTP layer can map it to a status without inspecting provider errors.
package apperr

import (
	"errors"
	"fmt"
)

// Code is a stable error code for programmatic handling.
type Code string

const (
	CodeUnknown       Code = "unknown"
	CodeInvalid       Code = "invalid"
	CodeNotFound      Code = "not_found"
	CodeFetch         Code = "fetch"
	CodeWrite         Code = "write"
	CodeAuthorization Code = "authorization"
	CodeUpload        Code = "upload"
)

// Error carries a code, a human message, and the wrapped provider error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap supports errors.Is/As chains.
func (e *Error) Unwrap() error { return e.Err }

// New creates an Error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap wraps an existing error with a code and message.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the code from an error chain, CodeUnknown otherwise.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

func IsNotFound(err error) bool      { return CodeOf(err) == CodeNotFound }
func IsAuthorization(err error) bool { return CodeOf(err) == CodeAuthorization }
func IsFetch(err error) bool         { return CodeOf(err) == CodeFetch }
