package entity

import "errors"

// StoreError represents a business-logic error from entity store operations
// (record not found, duplicate id) as opposed to infrastructure errors
// (disk failure, connection loss), which use ErrIO.
//
// The drive engine translates StoreError codes into its own error kinds;
// adapters never see StoreError directly.
type StoreError struct {
	// Code is the error category
	Code ErrorCode

	// Message is a human-readable error description
	Message string

	// ID is the entity id related to the error (if applicable)
	ID string
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.ID != "" {
		return e.Message + ": " + e.ID
	}
	return e.Message
}

// ErrorCode represents the category of a store error.
type ErrorCode int

const (
	// ErrNotFound indicates the requested user/file/folder doesn't exist
	ErrNotFound ErrorCode = iota

	// ErrAlreadyExists indicates a record with the same id already exists
	ErrAlreadyExists

	// ErrIO indicates an underlying persistence failure
	ErrIO
)

// NewNotFound returns a StoreError with code ErrNotFound.
func NewNotFound(message, id string) *StoreError {
	return &StoreError{Code: ErrNotFound, Message: message, ID: id}
}

// NewAlreadyExists returns a StoreError with code ErrAlreadyExists.
func NewAlreadyExists(message, id string) *StoreError {
	return &StoreError{Code: ErrAlreadyExists, Message: message, ID: id}
}

// NewIO returns a StoreError with code ErrIO wrapping an underlying failure.
func NewIO(message string, cause error) *StoreError {
	if cause != nil {
		message = message + ": " + cause.Error()
	}
	return &StoreError{Code: ErrIO, Message: message}
}

// IsCode reports whether err is a StoreError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Code == code
	}
	return false
}

// IsNotFound reports whether err is a StoreError with code ErrNotFound.
func IsNotFound(err error) bool {
	return IsCode(err, ErrNotFound)
}
