// Package domain contains the catalog's business types and errors.
// Domain errors represent business-level failures. They carry no knowledge of
// the file format or the CLI and are mapped by adapters where needed.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a state conflict such as a duplicate registration.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates an argument failed a business rule.
	ErrValidation = errors.New("validation failed")

	// ErrStorage indicates the persisted catalog could not be read or written.
	ErrStorage = errors.New("storage failure")

	// ErrSchema indicates persisted content does not match the expected schema.
	ErrSchema = errors.New("schema mismatch")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError provides context for conflict errors.
type ConflictError struct {
	Entity string
	Reason string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a conflict error with context.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// StorageError reports an I/O failure against the persisted catalog.
// Both ErrStorage and the underlying cause are reachable through errors.Is.
type StorageError struct {
	Op       string
	Location string
	Cause    error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Location, e.Cause)
	}

	return fmt.Sprintf("%s %s failed", e.Op, e.Location)
}

// Unwrap exposes the sentinel and the cause.
func (e *StorageError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStorage}
	}

	return []error{ErrStorage, e.Cause}
}

// NewStorageError creates a storage error for the given operation and target.
func NewStorageError(op, location string, cause error) error {
	return &StorageError{Op: op, Location: location, Cause: cause}
}

// SchemaError reports persisted content that cannot be mapped onto the domain.
type SchemaError struct {
	Path   string
	Reason string
	Cause  error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	msg := "invalid catalog document"
	if e.Path != "" {
		msg += " at " + e.Path
	}

	msg += ": " + e.Reason
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap exposes the sentinel and the cause.
func (e *SchemaError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrSchema}
	}

	return []error{ErrSchema, e.Cause}
}

// NewSchemaError creates a schema error located at path within the document.
func NewSchemaError(path, reason string) error {
	return &SchemaError{Path: path, Reason: reason}
}

// NewSchemaErrorWithCause creates a schema error wrapping a decoder failure.
func NewSchemaErrorWithCause(path, reason string, cause error) error {
	return &SchemaError{Path: path, Reason: reason, Cause: cause}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsStorage checks if an error is a storage error.
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

// IsSchema checks if an error is a schema error.
func IsSchema(err error) bool {
	return errors.Is(err, ErrSchema)
}
