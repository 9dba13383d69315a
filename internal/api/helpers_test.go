package api_test

import (
	"log/slog"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/cloud-task-manager/internal/api"
	"github.com/phrazzld/cloud-task-manager/internal/api/middleware"
	"github.com/phrazzld/cloud-task-manager/internal/config"
	"github.com/phrazzld/cloud-task-manager/internal/domain"
	"github.com/phrazzld/cloud-task-manager/internal/service"
	"github.com/phrazzld/cloud-task-manager/internal/testutils"
)

var testAPIConfig = config.APIConfig{
	Title:       "Cloud Task Manager API",
	Description: "Simple CRUD API for Cloud Task Manager (DevSecOps demo)",
	Version:     "v1",
	DocsURL:     "https://github.com/example/cloud-task-manager",
}

// newTestServer mounts the task routes and the API document on a chi router.
func newTestServer(t *testing.T, svc service.TaskService) (*httptest.Server, *testutils.TestSlogHandler) {
	t.Helper()

	logs := testutils.NewTestSlogHandler()
	log := slog.New(logs)

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware(log))
	api.NewTaskHandler(svc, log).RegisterRoutes(r)
	r.Get(api.OpenAPIPath, api.OpenAPIHandler(testAPIConfig))

	return testutils.CreateTestServer(t, r), logs
}

func notFoundError(operation string, id int64) error {
	return &service.TaskServiceError{
		Operation: operation,
		Message:   "task not found with id: " + strconv.FormatInt(id, 10),
		Err:       service.ErrTaskNotFound,
	}
}

func sampleTask(id int64) *domain.Task {
	return testutils.NewTestTask(
		testutils.WithTaskID(id),
		testutils.WithTaskTitle("Buy milk"),
	)
}
