package testutils

import (
	"context"
	"testing"

	"github.com/phrazzld/cloud-task-manager/internal/domain"
	"github.com/phrazzld/cloud-task-manager/internal/store"
	"github.com/stretchr/testify/require"
)

// TaskOption customizes a task built by NewTestTask.
type TaskOption func(*domain.Task)

// WithTaskID sets the task ID.
func WithTaskID(id int64) TaskOption {
	return func(t *domain.Task) { t.ID = id }
}

// WithTaskTitle sets the task title.
func WithTaskTitle(title string) TaskOption {
	return func(t *domain.Task) { t.Title = title }
}

// WithTaskDescription sets the task description.
func WithTaskDescription(description string) TaskOption {
	return func(t *domain.Task) { t.Description = &description }
}

// WithTaskStatus sets the task status.
func WithTaskStatus(status domain.TaskStatus) TaskOption {
	return func(t *domain.Task) { t.Status = status }
}

// NewTestTask creates a valid, unsaved PENDING task titled "Test task".
func NewTestTask(opts ...TaskOption) *domain.Task {
	task := &domain.Task{
		Title:  "Test task",
		Status: domain.TaskStatusPending,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

// MustInsertTask saves a new test task through taskStore and returns it with its ID set.
func MustInsertTask(
	ctx context.Context,
	t *testing.T,
	taskStore store.TaskStore,
	opts ...TaskOption,
) *domain.Task {
	t.Helper()

	task := NewTestTask(opts...)
	require.NoError(t, taskStore.Save(ctx, task), "Failed to insert test task")
	require.NotZero(t, task.ID, "Inserted task must have an ID")
	return task
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// StatusPtr returns a pointer to status.
func StatusPtr(status domain.TaskStatus) *domain.TaskStatus {
	return &status
}
