// Package apperrors defines the request error taxonomy. Every error
// is terminal for its request: handlers map the type to a status code
// and return the message verbatim.
package apperrors

import (
	"fmt"
)

// ValidationError names malformed or missing client input (HTTP 400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError marks an absent delete target (HTTP 404).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NotFound(message string) error {
	return &NotFoundError{Message: message}
}

// StorageError carries a store-reported failure through to the caller
// (HTTP 500, message passed through from the store).
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func Storage(err error) error {
	return &StorageError{Err: err}
}
