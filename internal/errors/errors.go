// Package errors provides sentinel errors, structured error details and exit
// codes for the modforge CLI.
package errors

import (
	"strings"
)

// DetailError is a user-facing error that names what was wrong and where.
// Its category comes from Cause, which is one of the package sentinels.
type DetailError struct {
	// Message is the one-line description shown first.
	Message string

	// Field is the argument, flag or config key at fault.
	Field string

	// Path is the file or directory involved, relative to the project where
	// possible.
	Path string

	// Hint tells the user how to fix it.
	Hint string

	// Cause is the sentinel or underlying error.
	Cause error
}

// Error renders the message followed by indented field, path and hint lines:
//
//	invalid module name "1Posts"
//	  field: name
//	  hint:  Start each segment with a letter.
func (e *DetailError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)

	line := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString("\n  ")
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", 6-len(label)))
		b.WriteString(value)
	}
	line("field:", e.Field)
	line("path:", e.Path)
	line("hint:", e.Hint)

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError reports invalid input for field.
func NewValidationError(field, message, hint string) error {
	return &DetailError{Message: message, Field: field, Hint: hint, Cause: ErrValidation}
}

// NewNotFoundError reports a missing stub, directory or config file at path.
func NewNotFoundError(path, message, hint string) error {
	return &DetailError{Message: message, Path: path, Hint: hint, Cause: ErrNotFound}
}

// NewPermissionError reports that the filesystem refused an operation on path.
func NewPermissionError(path, message, hint string) error {
	return &DetailError{Message: message, Path: path, Hint: hint, Cause: ErrPermission}
}

// NewAlreadyExistsError reports that path is present and will not be replaced.
func NewAlreadyExistsError(path, message, hint string) error {
	return &DetailError{Message: message, Path: path, Hint: hint, Cause: ErrAlreadyExists}
}
