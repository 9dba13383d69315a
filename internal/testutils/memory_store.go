package testutils

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/phrazzld/cloud-task-manager/internal/domain"
	"github.com/phrazzld/cloud-task-manager/internal/store"
)

// MemoryTaskStore is an in-memory store.TaskStore.
// WithTx returns the store itself; transaction outcome is observed through
// the *sql.DB passed to NewMemoryTaskStore.
type MemoryTaskStore struct {
	mu     sync.Mutex
	tasks  map[int64]domain.Task
	nextID int64
	db     *sql.DB

	// Failure injection
	SaveErr     error
	DeleteErr   error
	ListErr     error
	PanicOnSave bool

	// TxCount counts WithTx calls.
	TxCount int
}

// Ensure MemoryTaskStore implements store.TaskStore
var _ store.TaskStore = (*MemoryTaskStore)(nil)

// NewMemoryTaskStore creates an empty store whose DB method returns db.
func NewMemoryTaskStore(db *sql.DB) *MemoryTaskStore {
	return &MemoryTaskStore{tasks: make(map[int64]domain.Task), db: db}
}

// Len returns the number of stored tasks.
func (m *MemoryTaskStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Has reports whether a task with id is stored.
func (m *MemoryTaskStore) Has(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tasks[id]
	return ok
}

// GetByID implements store.TaskStore.GetByID
func (m *MemoryTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	task, ok := m.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

// GetForUpdate implements store.TaskStore.GetForUpdate
func (m *MemoryTaskStore) GetForUpdate(ctx context.Context, id int64) (*domain.Task, error) {
	return m.GetByID(ctx, id)
}

// List implements store.TaskStore.List
func (m *MemoryTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	return m.filter(func(domain.Task) bool { return true })
}

// ListByStatus implements store.TaskStore.ListByStatus
func (m *MemoryTaskStore) ListByStatus(
	ctx context.Context,
	status domain.TaskStatus,
) ([]*domain.Task, error) {
	return m.filter(func(t domain.Task) bool { return t.Status == status })
}

func (m *MemoryTaskStore) filter(keep func(domain.Task) bool) ([]*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	tasks := []*domain.Task{}
	for _, t := range m.tasks {
		if keep(t) {
			task := t
			tasks = append(tasks, &task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// Save implements store.TaskStore.Save
func (m *MemoryTaskStore) Save(ctx context.Context, task *domain.Task) error {
	if m.PanicOnSave {
		panic("memory store: save panicked")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if err := task.Validate(); err != nil {
		return store.NewStoreError("task", "save", "invalid task", store.ErrInvalidEntity)
	}

	if task.ID == 0 {
		m.nextID++
		task.ID = m.nextID
	} else if _, ok := m.tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	m.tasks[task.ID] = *task
	return nil
}

// Delete implements store.TaskStore.Delete
func (m *MemoryTaskStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if _, ok := m.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

// WithTx implements store.TaskStore.WithTx
func (m *MemoryTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	m.mu.Lock()
	m.TxCount++
	m.mu.Unlock()
	return m
}

// DB implements store.TaskStore.DB
func (m *MemoryTaskStore) DB() *sql.DB {
	return m.db
}
