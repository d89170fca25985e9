package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input or configuration.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates the filesystem refused an operation.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a stub, file, or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a destination file is already present.
	ErrAlreadyExists = errors.New("already exists")
)
