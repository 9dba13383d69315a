package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/cloud-task-manager/internal/domain"
	"github.com/phrazzld/cloud-task-manager/internal/service"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	// Custom behavior functions
	CreateTaskFn  func(ctx context.Context, input service.TaskInput) (*domain.Task, error)
	GetTaskFn     func(ctx context.Context, id int64) (*domain.Task, error)
	GetAllTasksFn func(ctx context.Context, status *domain.TaskStatus) ([]*domain.Task, error)
	UpdateTaskFn  func(ctx context.Context, id int64, input service.TaskInput) (*domain.Task, error)
	DeleteTaskFn  func(ctx context.Context, id int64) error

	// Default return values
	Task         *domain.Task
	Tasks        []*domain.Task
	DefaultError error

	// Call tracking for verification
	mu     sync.Mutex
	Calls  []string
	Inputs []service.TaskInput
}

// Ensure MockTaskService implements service.TaskService
var _ service.TaskService = (*MockTaskService)(nil)

func (m *MockTaskService) record(name string, input *service.TaskInput) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, name)
	if input != nil {
		m.Inputs = append(m.Inputs, *input)
	}
}

// CallCount returns how many times the named method was called.
func (m *MockTaskService) CallCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, call := range m.Calls {
		if call == name {
			count++
		}
	}
	return count
}

// CreateTask implements the TaskService.CreateTask method
func (m *MockTaskService) CreateTask(ctx context.Context, input service.TaskInput) (*domain.Task, error) {
	m.record("CreateTask", &input)
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, input)
	}
	return m.Task, m.DefaultError
}

// GetTask implements the TaskService.GetTask method
func (m *MockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	m.record("GetTask", nil)
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return m.Task, m.DefaultError
}

// GetAllTasks implements the TaskService.GetAllTasks method
func (m *MockTaskService) GetAllTasks(ctx context.Context, status *domain.TaskStatus) ([]*domain.Task, error) {
	m.record("GetAllTasks", nil)
	if m.GetAllTasksFn != nil {
		return m.GetAllTasksFn(ctx, status)
	}
	return m.Tasks, m.DefaultError
}

// UpdateTask implements the TaskService.UpdateTask method
func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	id int64,
	input service.TaskInput,
) (*domain.Task, error) {
	m.record("UpdateTask", &input)
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, input)
	}
	return m.Task, m.DefaultError
}

// DeleteTask implements the TaskService.DeleteTask method
func (m *MockTaskService) DeleteTask(ctx context.Context, id int64) error {
	m.record("DeleteTask", nil)
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return m.DefaultError
}
