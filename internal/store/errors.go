package store

import (
	"errors"
	"fmt"
)

// Sentinels shared by every TaskStore implementation. Implementations wrap
// driver errors with these so callers never see database types.
var (
	// ErrNotFound means no row matched the lookup.
	ErrNotFound = errors.New("record not found")

	// ErrTaskNotFound narrows ErrNotFound to the tasks table.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("record already exists")

	// ErrInvalidEntity is returned when a task is rejected before or during a
	// write, either by domain validation or by a table constraint.
	ErrInvalidEntity = errors.New("invalid record")

	// ErrTransactionFailed is returned when BEGIN or COMMIT fails.
	ErrTransactionFailed = errors.New("transaction failed")
)

// IsNotFoundError reports whether err is, or wraps, ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError adds the entity and operation to a failed store call.
type StoreError struct {
	Entity    string
	Operation string
	Message   string
	Err       error
}

func (e *StoreError) Error() string {
	msg := e.Operation + " " + e.Entity + ": " + e.Message
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError builds a StoreError; err may be nil.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{Entity: entity, Operation: operation, Message: message, Err: err}
}
