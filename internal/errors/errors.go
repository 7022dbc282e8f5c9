// Package errors provides the structured error type used by vitals commands.
// Errors carry a category code, a user-facing message, and an optional
// suggestion for how to recover.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing failures.
const (
	ErrConfig   = "CONFIG"
	ErrProvider = "PROVIDER"
	ErrRender   = "RENDER"
)

// Error is a structured error with code, message, suggestion, and optional
// cause. Rendered as:
//
//	✗ <what failed>
//
//	  <why it failed>
//
//	  <how to fix it>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a structured error.
func New(code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// Wrap wraps an existing error with a message under the given code.
func Wrap(err error, code, message string) *Error {
	return &Error{Code: code, Message: message, Cause: err}
}

// WrapWithSuggestion wraps an existing error and attaches a recovery hint.
func WrapWithSuggestion(err error, code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion, Cause: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode reports whether err is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Code == code
	}
	return false
}
