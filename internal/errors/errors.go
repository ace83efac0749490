package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a caller-supplied input failing a precondition
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// StorageError wraps a persistence-layer failure. Callers treat it as an
// unexpected condition, not a normal outcome.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrUserNotFound  = &NotFoundError{Entity: "user"}
	ErrMovieNotFound = &NotFoundError{Entity: "movie"}
)

// Validation Errors
var (
	ErrUserNameRequired   = &ValidationError{Field: "user_name", Message: "name must not be empty or whitespace"}
	ErrMovieTitleRequired = &ValidationError{Field: "title", Message: "title is required"}
)

// Business Logic Errors
var (
	ErrEnrichmentFailed = errors.New("could not resolve movie details from lookup service")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// Storage wraps err in a StorageError for the named operation. Returns nil
// when err is nil so callers can wrap unconditionally.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
