package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/cloud-task-manager/internal/domain"
	"github.com/phrazzld/cloud-task-manager/internal/store"
)

// ErrTaskNotFound indicates that the requested task does not exist.
// API layer should map this to HTTP 404 Not Found.
var ErrTaskNotFound = errors.New("task not found")

// TaskServiceError wraps errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "update_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// Validation errors are returned unchanged so callers can render their field.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	var serviceErr *TaskServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// newNotFoundError reports a missing task, naming the requested id.
func newNotFoundError(operation string, id int64) error {
	return &TaskServiceError{
		Operation: operation,
		Message:   fmt.Sprintf("task not found with id: %d", id),
		Err:       ErrTaskNotFound,
	}
}

// mapStoreError converts store errors into service errors for operation.
func mapStoreError(operation, message string, id int64, err error) error {
	if store.IsNotFoundError(err) {
		return newNotFoundError(operation, id)
	}
	return NewTaskServiceError(operation, message, err)
}
