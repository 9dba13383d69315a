package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/cloud-task-manager/internal/domain"
)

// getPathID extracts a positive int64 ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}

// getStatusFilter reads the optional status query parameter.
// It returns nil when the parameter is absent or empty (?status=).
func getStatusFilter(r *http.Request) (*domain.TaskStatus, error) {
	values, ok := r.URL.Query()["status"]
	if !ok || len(values) == 0 || values[0] == "" {
		return nil, nil
	}

	status, err := domain.ParseTaskStatus(values[0])
	if err != nil {
		return nil, err
	}
	return &status, nil
}
