package domain

import (
	"strings"
	"unicode/utf8"
)

// TaskStatus represents the lifecycle stage of a task.
type TaskStatus string

// Possible task status values
const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// Field limits for Task
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
)

// TaskStatuses lists every valid status in declaration order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusDone}
}

// IsValid reports whether s is one of the known statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// ParseTaskStatus converts a raw string into a TaskStatus.
// Matching is exact; unknown values return ErrInvalidTaskStatus.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	status := TaskStatus(raw)
	if !status.IsValid() {
		return "", NewValidationError("status", "must be one of "+JoinStatuses(", "), ErrInvalidTaskStatus)
	}
	return status, nil
}

// Task is the single entity tracked by the system.
// A zero ID means the task has not been persisted yet.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status"`
}

// Validate checks if the Task has valid data.
// It does not check the ID, so it can be used before the first insert.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "is required", nil)
	}
	if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		return NewValidationError("title", "must be at most 255 characters", nil)
	}
	if t.Description != nil && utf8.RuneCountInString(*t.Description) > MaxDescriptionLength {
		return NewValidationError("description", "must be at most 1000 characters", nil)
	}
	if !t.Status.IsValid() {
		return NewValidationError("status", "must be one of "+JoinStatuses(", "), ErrInvalidTaskStatus)
	}
	return nil
}

// JoinStatuses renders the status set for messages, separated by sep.
func JoinStatuses(sep string) string {
	statuses := TaskStatuses()
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, sep)
}
