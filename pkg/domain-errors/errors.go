// Package domainerrors provides coded errors shared across services.
//
// Services translate store sentinels and invariant violations into coded
// errors here; the HTTP layer maps codes onto statuses without inspecting
// error strings.
package domainerrors

import (
	"errors"
	"fmt"
)

type Code string

const (
	// CodeValidation marks caller-correctable input failures. The error
	// carries the individual messages in Details.
	CodeValidation Code = "validation_failed"
	// CodeInvalidTransition marks a status change not permitted from the
	// record's current onboarding status.
	CodeInvalidTransition Code = "invalid_transition"
	// CodeInvariantViolation marks a broken aggregate invariant; services
	// usually re-code these before they reach a caller.
	CodeInvariantViolation Code = "invariant_violation"
	CodeInvalidInput       Code = "invalid_input"
	CodeBadRequest         Code = "bad_request"
	CodeUnauthorized       Code = "unauthorized"
	CodeForbidden          Code = "forbidden"
	CodeNotFound           Code = "not_found"
	CodeConflict           Code = "conflict"
	CodeTimeout            Code = "timeout"
	CodeInternal           Code = "internal_error"
)

// Error is a coded domain error. Details is only populated for validation
// failures, where each entry is one human-readable message.
type Error struct {
	Code    Code
	Message string
	Details []string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewValidation builds a validation error carrying the full message list so
// callers can surface every failed field at once.
func NewValidation(messages []string) *Error {
	msg := "validation failed"
	if len(messages) == 1 {
		msg = messages[0]
	}
	return &Error{Code: CodeValidation, Message: msg, Details: messages}
}

// Wrap keeps the underlying error reachable via errors.Is/As while exposing
// a stable code and message to callers.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is a readability alias for HasCode at call sites that read like
// dErrors.Is(err, dErrors.CodeNotFound).
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// Details returns the message list for validation errors, nil otherwise.
func Details(err error) []string {
	var de *Error
	if errors.As(err, &de) {
		return de.Details
	}
	return nil
}
