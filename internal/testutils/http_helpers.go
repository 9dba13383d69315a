package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/cloud-task-manager/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// The server is closed automatically via t.Cleanup().
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// DoRequest sends a request with a raw body and returns the response and its
// fully read body. An empty body sends no payload.
func DoRequest(
	t *testing.T,
	server *httptest.Server,
	method, path, body string,
) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err, "Failed to create request")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("Warning: failed to close response body: %v", err)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return resp, respBody
}

// DoJSONRequest marshals payload and sends it with DoRequest.
func DoJSONRequest(
	t *testing.T,
	server *httptest.Server,
	method, path string,
	payload interface{},
) (*http.Response, []byte) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err, "Failed to marshal request body")
	return DoRequest(t, server, method, path, string(body))
}

// AssertErrorResponse checks the status code and message of an error body
// and returns the decoded response for further assertions.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	body []byte,
	expectedStatus int,
	expectedMessage string,
) shared.ErrorResponse {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d: %s", expectedStatus, resp.StatusCode, string(body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "Failed to unmarshal error response: %s", string(body))

	assert.Equal(t, expectedStatus, errResp.Status)
	assert.Equal(t, http.StatusText(expectedStatus), errResp.Error)
	assert.Equal(t, expectedMessage, errResp.Message)
	assert.Equal(t, resp.Request.URL.Path, errResp.Path)
	assert.False(t, errResp.Timestamp.IsZero(), "timestamp should be set")
	return errResp
}
