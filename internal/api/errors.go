package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/cloud-task-manager/internal/api/shared"
	"github.com/phrazzld/cloud-task-manager/internal/domain"
	"github.com/phrazzld/cloud-task-manager/internal/service"
	"github.com/phrazzld/cloud-task-manager/internal/store"
)

// Client-facing messages.
const (
	msgInvalidRequest   = "Invalid request format"
	msgValidationFailed = "Validation failed"
	msgUnexpected       = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.As(err, &validationErrs),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidTaskStatus),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	var serviceErr *service.TaskServiceError
	switch {
	case errors.As(err, &serviceErr) && errors.Is(serviceErr.Err, service.ErrTaskNotFound):
		return capitalize(serviceErr.Message)

	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return "Task not found"

	case errors.Is(err, domain.ErrInvalidID):
		var domainErr *domain.ValidationError
		if errors.As(err, &domainErr) {
			return fieldLabel(domainErr.Field) + " " + domainErr.Message
		}
		return "Invalid id"

	case MapErrorToStatusCode(err) == http.StatusBadRequest:
		return msgValidationFailed

	default:
		return msgUnexpected
	}
}

// HandleAPIError translates err into the structured error response.
// 5xx errors are logged at ERROR level after redaction; 4xx at DEBUG, except
// store rejections, which are logged at WARN.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	var opts []shared.ResponseOption
	if errors.Is(err, store.ErrInvalidEntity) {
		// Rejected by the store after request validation passed.
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	if status == http.StatusBadRequest && !errors.Is(err, domain.ErrInvalidID) {
		if fields := fieldMessages(err); len(fields) > 0 {
			opts = append(opts, shared.WithFields(fields))
		}
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
