package types

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup that matched no row. Not-found is part of the
// normal flow and maps to a 404 envelope, never a 5xx.
var ErrNotFound = errors.New("not found")

// CustomError carries an HTTP status and an error type tag through the
// Fiber error handler.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// ValidationError reports malformed or rule-violating input. Maps to a 400
// envelope and is never retried.
type ValidationError struct {
	Message string
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %v", e.Message, e.Details)
	}
	return e.Message
}

// NewValidationError builds a ValidationError with optional detail lines.
func NewValidationError(message string, details ...string) error {
	return &ValidationError{Message: message, Details: details}
}

// StorageError wraps an underlying persistence failure (connectivity,
// constraint violation, payload decode). Maps to a 500 envelope.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err for operation op, passing nil through.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
