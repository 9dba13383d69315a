// Package mocks provides centralized mock implementations for testing.
//
// MockTaskService uses function fields with default return values:
//
//	svc := &mocks.MockTaskService{
//	    GetTaskFn: func(ctx context.Context, id int64) (*domain.Task, error) {
//	        return &domain.Task{ID: id, Title: "x", Status: domain.TaskStatusPending}, nil
//	    },
//	}
//
// MockTaskStore is a testify mock; set expectations with On and verify them
// with AssertExpectations.
package mocks
