package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/cloud-task-manager/internal/domain"
	"github.com/phrazzld/cloud-task-manager/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockTaskStore is a testify mock of store.TaskStore.
// WithTx returns the mock itself so expectations cover transactional calls too.
type MockTaskStore struct {
	mock.Mock
	Pool *sql.DB
}

// Ensure MockTaskStore implements store.TaskStore
var _ store.TaskStore = (*MockTaskStore)(nil)

func taskResult(args mock.Arguments) (*domain.Task, error) {
	if task, ok := args.Get(0).(*domain.Task); ok {
		return task, args.Error(1)
	}
	return nil, args.Error(1)
}

func tasksResult(args mock.Arguments) ([]*domain.Task, error) {
	if tasks, ok := args.Get(0).([]*domain.Task); ok {
		return tasks, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID mocks store.TaskStore.GetByID
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	return taskResult(m.Called(ctx, id))
}

// GetForUpdate mocks store.TaskStore.GetForUpdate
func (m *MockTaskStore) GetForUpdate(ctx context.Context, id int64) (*domain.Task, error) {
	return taskResult(m.Called(ctx, id))
}

// List mocks store.TaskStore.List
func (m *MockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	return tasksResult(m.Called(ctx))
}

// ListByStatus mocks store.TaskStore.ListByStatus
func (m *MockTaskStore) ListByStatus(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error) {
	return tasksResult(m.Called(ctx, status))
}

// Save mocks store.TaskStore.Save
func (m *MockTaskStore) Save(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

// Delete mocks store.TaskStore.Delete
func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// WithTx returns the mock itself.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}

// DB returns Pool.
func (m *MockTaskStore) DB() *sql.DB {
	return m.Pool
}
