package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowgate/internal/auth"
	"flowgate/internal/gateway"
)

type fakeExecutor struct {
	last   gateway.Invocation
	result gateway.Result
}

func (f *fakeExecutor) Execute(_ context.Context, inv gateway.Invocation) gateway.Result {
	f.last = inv
	return f.result
}

func testServer(exec Executor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	sessions := auth.NewManager("test-secret", time.Hour)
	srv := NewServer(sessions, nil, nil, nil, nil, exec)
	return srv.SetupRoutes()
}

func TestExecuteGetUsesQueryParams(t *testing.T) {
	exec := &fakeExecutor{result: gateway.Result{
		Status: http.StatusOK,
		Body:   gateway.Envelope{Success: true, Message: "ok"},
	}}
	router := testServer(exec)

	req := httptest.NewRequest(http.MethodGet, "/api/execute/wf-1?topic=news&lang=fr", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "wf-1", exec.last.WorkflowID)
	assert.Equal(t, http.MethodGet, exec.last.Method)
	assert.Equal(t, map[string]any{"topic": "news", "lang": "fr"}, exec.last.Params)
}

func TestExecutePostUsesJSONBody(t *testing.T) {
	exec := &fakeExecutor{result: gateway.Result{Status: http.StatusOK, Body: gin.H{}}}
	router := testServer(exec)

	body := strings.NewReader(`{"topic":"news","count":3}`)
	req := httptest.NewRequest(http.MethodPost, "/api/execute/wf-1", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.MethodPost, exec.last.Method)
	assert.Equal(t, map[string]any{"topic": "news", "count": float64(3)}, exec.last.Params)
}

func TestExecutePostEmptyBody(t *testing.T) {
	exec := &fakeExecutor{result: gateway.Result{Status: http.StatusOK, Body: gin.H{}}}
	router := testServer(exec)

	req := httptest.NewRequest(http.MethodPost, "/api/execute/wf-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{}, exec.last.Params)
}

func TestExecutePostInvalidJSON(t *testing.T) {
	exec := &fakeExecutor{}
	router := testServer(exec)

	req := httptest.NewRequest(http.MethodPost, "/api/execute/wf-1", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, exec.last.WorkflowID)
}

func TestExecutePassesStatusThrough(t *testing.T) {
	exec := &fakeExecutor{result: gateway.Result{
		Status: http.StatusNotFound,
		Body:   gateway.ErrorBody{Message: "workflow configuration not found"},
	}}
	router := testServer(exec)

	req := httptest.NewRequest(http.MethodGet, "/api/execute/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "workflow configuration not found", body["message"])
}
