// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies a command error so callers and scripts can
// tell bad input from missing data from failures.
type ErrorCategory string

const (
	// CategoryValidation means the invocation was wrong: an unknown
	// flag, a malformed year, too many arguments. Fix the input and
	// retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound means a referenced mission or file does not
	// exist.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryInternal means an unexpected failure such as an I/O
	// error from the favorites store.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error with an optional hint. Use the
// constructors below rather than building one directly.
type ToolError struct {
	Category ErrorCategory
	Err      error

	// Hint is a suggested next step, printed after the message.
	Hint string
}

// Error returns the message followed by the hint, if any.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets the hint and returns e for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Validation creates a validation error.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
