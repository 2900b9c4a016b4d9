package errors

import (
	"errors"
	"fmt"
)

// Common errors that can be used across packages
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNoCredential     = errors.New("no credential configured")
	ErrMalformed        = errors.New("malformed response")
)

// ValidationError represents an error that occurs during validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// FileError represents an error that occurs during file operations
type FileError struct {
	Path    string
	Op      string
	Wrapped error
}

func (e *FileError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s operation failed on %s: %v", e.Op, e.Path, e.Wrapped)
	}
	return fmt.Sprintf("%s operation failed on %s", e.Op, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Wrapped
}

// NewFileError creates a new FileError
func NewFileError(path, op string, wrapped error) error {
	return &FileError{
		Path:    path,
		Op:      op,
		Wrapped: wrapped,
	}
}

// VCSError represents an error that occurs while reading local repository metadata
type VCSError struct {
	Op      string
	Path    string
	Wrapped error
}

func (e *VCSError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("VCS %s operation failed for %s: %v", e.Op, e.Path, e.Wrapped)
	}
	return fmt.Sprintf("VCS %s operation failed for %s", e.Op, e.Path)
}

func (e *VCSError) Unwrap() error {
	return e.Wrapped
}

// NewVCSError creates a new VCSError
func NewVCSError(op, path string, wrapped error) error {
	return &VCSError{
		Op:      op,
		Path:    path,
		Wrapped: wrapped,
	}
}

// StatusError carries the HTTP status returned by a registry.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Code)
}

// Unwrap maps well-known status codes onto the sentinel errors so callers
// can use errors.Is without inspecting the code.
func (e *StatusError) Unwrap() error {
	switch e.Code {
	case 401, 403:
		return ErrUnauthorized
	case 404, 410:
		return ErrNotFound
	}
	return nil
}

// NewStatusError creates a new StatusError
func NewStatusError(url string, code int) error {
	return &StatusError{URL: url, Code: code}
}

// Is reports whether target matches err.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
