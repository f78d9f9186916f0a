package drive

import (
	"errors"
	"fmt"

	"github.com/marmos91/dittodrive/pkg/store/entity"
)

// ErrorCode classifies engine failures so callers (REST adapter, seeder)
// can map them without string matching.
type ErrorCode string

const (
	// ErrNotFound indicates a referenced user, file, or folder does not exist.
	ErrNotFound ErrorCode = "NOT_FOUND"

	// ErrForbidden indicates the acting user has no access to the node.
	ErrForbidden ErrorCode = "FORBIDDEN"

	// ErrInvalidOperation indicates a structurally invalid request, such as
	// moving a folder into itself or into its own subtree.
	ErrInvalidOperation ErrorCode = "INVALID_OPERATION"

	// ErrStore indicates an underlying storage failure.
	ErrStore ErrorCode = "STORE_ERROR"
)

// Error is the domain error type returned by all Service operations.
type Error struct {
	// Code classifies the failure
	Code ErrorCode

	// Message is a human-readable description
	Message string

	// NodeID identifies the user, file, or folder involved (optional)
	NodeID string

	// cause is the wrapped underlying error (optional)
	cause error
}

func (e *Error) Error() string {
	if e.NodeID != "" {
		return fmt.Sprintf("%s: %s (id: %s)", e.Code, e.Message, e.NodeID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// NewNotFound creates a not-found error for the given node.
func NewNotFound(message, nodeID string) *Error {
	return &Error{Code: ErrNotFound, Message: message, NodeID: nodeID}
}

// NewForbidden creates an access-denied error for the given node.
func NewForbidden(message, nodeID string) *Error {
	return &Error{Code: ErrForbidden, Message: message, NodeID: nodeID}
}

// NewInvalidOperation creates an error for a structurally invalid request.
func NewInvalidOperation(message, nodeID string) *Error {
	return &Error{Code: ErrInvalidOperation, Message: message, NodeID: nodeID}
}

// NewStoreError wraps an underlying storage failure.
func NewStoreError(message string, cause error) *Error {
	return &Error{Code: ErrStore, Message: message, cause: cause}
}

// IsCode reports whether err is a drive Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var driveErr *Error
	return errors.As(err, &driveErr) && driveErr.Code == code
}

// translateStoreError maps storage-layer errors to domain errors.
//
// Not-found from the store becomes ErrNotFound, duplicate ids become
// ErrInvalidOperation, and everything else (IO failures, missing content)
// becomes ErrStore.
func translateStoreError(err error, message string) error {
	if err == nil {
		return nil
	}

	var driveErr *Error
	if errors.As(err, &driveErr) {
		return driveErr
	}

	var storeErr *entity.StoreError
	if errors.As(err, &storeErr) {
		switch storeErr.Code {
		case entity.ErrNotFound:
			return NewNotFound(storeErr.Message, storeErr.ID)
		case entity.ErrAlreadyExists:
			return NewInvalidOperation(storeErr.Message, storeErr.ID)
		}
	}

	return NewStoreError(message, err)
}
