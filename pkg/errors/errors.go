package errors

import (
	"fmt"
)

// FetchError reports a failed read of the item dataset, either a transport
// failure or a non-success status.
type FetchError struct {
	Source     string
	StatusCode int
	Err        error
}

// NewFetchError constructs a FetchError for a transport failure.
func NewFetchError(source string, err error) error {
	return &FetchError{Source: source, Err: err}
}

// NewStatusError constructs a FetchError for a non-success status.
func NewStatusError(source string, status int) error {
	return &FetchError{Source: source, StatusCode: status}
}

func (e *FetchError) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch error: %s: HTTP error! status: %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("fetch error: %s: %v", e.Source, e.Err)
}

// Unwrap exposes the underlying error.
func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a JSON or YAML decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StorageError indicates a preference store read or write failed.
type StorageError struct {
	Backend string
	Op      string
	Key     string
	Err     error
}

// NewStorageError constructs a StorageError for the given backend operation.
func NewStorageError(backend, op, key string, err error) error {
	return &StorageError{Backend: backend, Op: op, Key: key, Err: err}
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("storage error [%s]: %s %q: %v", e.Backend, e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage error [%s]: %s: %v", e.Backend, e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
