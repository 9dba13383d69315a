package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/cloud-task-manager/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// It performs no business validation beyond refusing to write an invalid Task.
type TaskStore interface {
	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// GetForUpdate retrieves a task and locks its row until the surrounding
	// transaction ends (SELECT ... FOR UPDATE).
	// Must be called on a store obtained from WithTx.
	// Returns ErrTaskNotFound if the task does not exist.
	GetForUpdate(ctx context.Context, id int64) (*domain.Task, error)

	// List returns every task. Order is by ID but callers must not rely on it.
	// Returns an empty slice when there are no tasks.
	List(ctx context.Context) ([]*domain.Task, error)

	// ListByStatus returns every task whose status equals status.
	// Returns an empty slice when nothing matches.
	ListByStatus(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error)

	// Save inserts the task when task.ID is zero and assigns the generated ID,
	// otherwise it overwrites the stored row with the same ID.
	// Returns ErrTaskNotFound when updating an ID that does not exist and
	// ErrInvalidEntity (wrapping the domain error) when the task is invalid.
	Save(ctx context.Context, task *domain.Task) error

	// Delete removes a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a TaskStore that runs every query on tx.
	//
	// Example usage:
	//   err := store.RunInTransaction(ctx, taskStore.DB(), func(ctx context.Context, tx *sql.Tx) error {
	//       return taskStore.WithTx(tx).Delete(ctx, id)
	//   })
	WithTx(tx *sql.Tx) TaskStore

	// DB returns the connection pool used to start transactions.
	DB() *sql.DB
}
