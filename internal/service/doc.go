// Package service contains the application-specific use cases and business
// logic for task management. It orchestrates domain objects and the task
// repository (defined in internal/store) to fulfill the operations exposed by
// the HTTP API.
//
// Mutating operations run inside a single transaction started with
// store.RunInTransaction; reads go straight to the repository.
//
// Error handling:
//   - A missing task is reported as ErrTaskNotFound, wrapped in a
//     *TaskServiceError that names the requested id
//   - Invalid input is returned as a *domain.ValidationError
//   - Every other failure is wrapped in a *TaskServiceError
//
// Callers use errors.Is/errors.As to check for specific conditions; the API
// layer maps them to HTTP status codes.
package service
