package errors

import (
	stderrors "errors"
	"fmt"
)

// ParseError represents a configuration parsing failure with optional line metadata.
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

// ValidationError captures input that was rejected before any network call.
// Message is meant to be shown to the user as is.
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

// APIError represents a non-2xx answer from the product/auth API.
type APIError struct {
	Endpoint string
	Status   int
	Message  string
}

// NewAPIError constructs an APIError.
func NewAPIError(endpoint string, status int, message string) error {
	return &APIError{Endpoint: endpoint, Status: status, Message: message}
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return fmt.Sprintf("api error [%s] status %d: %s", e.Endpoint, e.Status, e.Message)
	}
	return fmt.Sprintf("api error [%s] status %d", e.Endpoint, e.Status)
}

// NotFoundError reports an entity that does not exist. Views render it as an
// empty state rather than a failure.
type NotFoundError struct {
	Kind string
	ID   string
	Err  error
}

// NewNotFoundError constructs a NotFoundError.
func NewNotFoundError(kind, id string, err error) error {
	return &NotFoundError{Kind: kind, ID: id, Err: err}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// Unwrap exposes the underlying error.
func (e *NotFoundError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AsAPIError unwraps err to an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var target *APIError
	if stderrors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// AsValidationError unwraps err to a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var target *ValidationError
	if stderrors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// IsNotFound reports whether err wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return stderrors.As(err, &target)
}
