package api_test

import (
	"net/http"
	"testing"

	"github.com/phrazzld/cloud-task-manager/internal/service"
	"github.com/phrazzld/cloud-task-manager/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskLifecycle(t *testing.T) {
	db, mock := testutils.NewMockDB(t)
	// create, update, delete each commit one transaction
	testutils.ExpectCommits(mock, 3)
	// the trailing update and delete attempts roll back
	testutils.ExpectRollbacks(mock, 2)

	repo := testutils.NewMemoryTaskStore(db)
	svc, err := service.NewTaskService(repo, nil)
	require.NoError(t, err)
	server, _ := newTestServer(t, svc)
	validator := newSchemaValidator(t)

	resp, body := testutils.DoRequest(t, server, http.MethodPost, "/api/v1/tasks",
		`{"title":"Buy milk","status":"PENDING"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"id":1,"title":"Buy milk","description":null,"status":"PENDING"}`, string(body))
	assert.Equal(t, "/api/v1/tasks/1", resp.Header.Get("Location"))
	validator.assertValid(t, "TaskResponse", body)

	resp, body = testutils.DoRequest(t, server, http.MethodPut, "/api/v1/tasks/1",
		`{"title":"Buy milk and eggs","description":"urgent"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"id":1,"title":"Buy milk and eggs","description":"urgent","status":"PENDING"}`, string(body))
	validator.assertValid(t, "TaskResponse", body)

	resp, body = testutils.DoRequest(t, server, http.MethodGet, "/api/v1/tasks", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"id":1,"title":"Buy milk and eggs","description":"urgent","status":"PENDING"}]`, string(body))
	validator.assertValidList(t, "TaskResponse", body)

	resp, body = testutils.DoRequest(t, server, http.MethodDelete, "/api/v1/tasks/1", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, body)

	resp, body = testutils.DoRequest(t, server, http.MethodGet, "/api/v1/tasks/1", "")
	testutils.AssertErrorResponse(t, resp, body, http.StatusNotFound, "Task not found with id: 1")
	validator.assertValid(t, "ErrorResponse", body)

	resp, body = testutils.DoRequest(t, server, http.MethodPut, "/api/v1/tasks/1", `{"title":"again"}`)
	testutils.AssertErrorResponse(t, resp, body, http.StatusNotFound, "Task not found with id: 1")

	resp, body = testutils.DoRequest(t, server, http.MethodDelete, "/api/v1/tasks/1", "")
	testutils.AssertErrorResponse(t, resp, body, http.StatusNotFound, "Task not found with id: 1")

	resp, body = testutils.DoRequest(t, server, http.MethodGet, "/api/v1/tasks", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
	assert.Zero(t, repo.Len())
}

func TestListFilterThroughService(t *testing.T) {
	db, mock := testutils.NewMockDB(t)
	testutils.ExpectCommits(mock, 4)

	repo := testutils.NewMemoryTaskStore(db)
	svc, err := service.NewTaskService(repo, nil)
	require.NoError(t, err)
	server, _ := newTestServer(t, svc)

	for _, body := range []string{
		`{"title":"a"}`,
		`{"title":"b","status":"DONE"}`,
		`{"title":"c","status":"IN_PROGRESS"}`,
		`{"title":"d","status":"DONE"}`,
	} {
		resp, respBody := testutils.DoRequest(t, server, http.MethodPost, "/api/v1/tasks", body)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(respBody))
	}

	_, body := testutils.DoRequest(t, server, http.MethodGet, "/api/v1/tasks?status=DONE", "")
	assert.JSONEq(t, `[
		{"id":2,"title":"b","description":null,"status":"DONE"},
		{"id":4,"title":"d","description":null,"status":"DONE"}
	]`, string(body))

	_, body = testutils.DoRequest(t, server, http.MethodGet, "/api/v1/tasks?status=PENDING", "")
	assert.JSONEq(t, `[{"id":1,"title":"a","description":null,"status":"PENDING"}]`, string(body))

	_, body = testutils.DoRequest(t, server, http.MethodGet, "/api/v1/tasks", "")
	validator := newSchemaValidator(t)
	validator.assertValidList(t, "TaskResponse", body)
	assert.Contains(t, string(body), `"id":3`)
}
