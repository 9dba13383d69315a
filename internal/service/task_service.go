package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/cloud-task-manager/internal/domain"
	"github.com/phrazzld/cloud-task-manager/internal/platform/logger"
	"github.com/phrazzld/cloud-task-manager/internal/store"
)

// TaskInput carries the client-supplied fields for creating or updating a task.
// A nil Status means "not supplied".
type TaskInput struct {
	Title       string
	Description *string
	Status      *domain.TaskStatus
}

// TaskService provides task-related operations.
type TaskService interface {
	// CreateTask stores a new task. Status defaults to PENDING when not supplied.
	CreateTask(ctx context.Context, input TaskInput) (*domain.Task, error)

	// GetTask retrieves a task by its ID.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// GetAllTasks returns every task, or only those with the given status when
	// status is non-nil.
	GetAllTasks(ctx context.Context, status *domain.TaskStatus) ([]*domain.Task, error)

	// UpdateTask overwrites title and description of an existing task and
	// replaces its status only when one is supplied.
	UpdateTask(ctx context.Context, id int64, input TaskInput) (*domain.Task, error)

	// DeleteTask removes a task by its ID.
	DeleteTask(ctx context.Context, id int64) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskRepo store.TaskStore
	logger   *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if the repository is nil.
func NewTaskService(taskRepo store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskRepo == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskRepo cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskRepo: taskRepo,
		logger:   logger.With("component", "task_service"),
	}, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, input TaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TaskStatusPending,
	}
	if input.Status != nil {
		task.Status = *input.Status
	}

	if err := task.Validate(); err != nil {
		log.Debug("rejected invalid task", "error", err)
		return nil, err
	}

	err := store.RunInTransaction(ctx, s.taskRepo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		if err := s.taskRepo.WithTx(tx).Save(ctx, task); err != nil {
			log.Error("failed to create task in transaction", "error", err)
			return NewTaskServiceError("create_task", "failed to save task", err)
		}
		return nil
	})
	if err != nil {
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created", "task_id", task.ID, "status", task.Status)
	return task, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		log.Debug("failed to retrieve task", "error", err, "task_id", id)
		return nil, mapStoreError("get_task", "failed to retrieve task", id, err)
	}

	return task, nil
}

// GetAllTasks implements TaskService.GetAllTasks
func (s *taskServiceImpl) GetAllTasks(
	ctx context.Context,
	status *domain.TaskStatus,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		tasks []*domain.Task
		err   error
	)
	if status == nil {
		tasks, err = s.taskRepo.List(ctx)
	} else {
		if _, err := domain.ParseTaskStatus(string(*status)); err != nil {
			return nil, err
		}
		tasks, err = s.taskRepo.ListByStatus(ctx, *status)
	}
	if err != nil {
		log.Error("failed to list tasks", "error", err, "status_filter", status)
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}

	if tasks == nil {
		tasks = []*domain.Task{}
	}
	log.Debug("listed tasks", "count", len(tasks))
	return tasks, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	input TaskInput,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.Task
	err := store.RunInTransaction(ctx, s.taskRepo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		txRepo := s.taskRepo.WithTx(tx)

		task, err := txRepo.GetForUpdate(ctx, id)
		if err != nil {
			return mapStoreError("update_task", "failed to retrieve task", id, err)
		}

		task.Title = input.Title
		task.Description = input.Description
		if input.Status != nil {
			task.Status = *input.Status
		}

		if err := task.Validate(); err != nil {
			return err
		}

		if err := txRepo.Save(ctx, task); err != nil {
			log.Error("failed to save updated task", "error", err, "task_id", id)
			return mapStoreError("update_task", "failed to save task", id, err)
		}

		updated = task
		return nil
	})
	if err != nil {
		log.Debug("task update failed", "error", err, "task_id", id)
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	log.Info("task updated", "task_id", updated.ID, "status", updated.Status)
	return updated, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.taskRepo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		txRepo := s.taskRepo.WithTx(tx)

		if _, err := txRepo.GetForUpdate(ctx, id); err != nil {
			return mapStoreError("delete_task", "failed to retrieve task", id, err)
		}

		if err := txRepo.Delete(ctx, id); err != nil {
			log.Error("failed to delete task", "error", err, "task_id", id)
			return mapStoreError("delete_task", "failed to delete task", id, err)
		}
		return nil
	})
	if err != nil {
		log.Debug("task delete failed", "error", err, "task_id", id)
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted", "task_id", id)
	return nil
}
