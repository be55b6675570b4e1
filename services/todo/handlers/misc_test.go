// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for miscellaneous handlers

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// HealthCheck Tests
// =============================================================================

func TestHealthCheck_ReturnsOK(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "ok", response["status"])
	assert.Equal(t, "aleutian-todo", response["service"])
}

// =============================================================================
// APIInfo Tests
// =============================================================================

func TestAPIInfo_DescribesEndpoints(t *testing.T) {
	router := gin.New()
	router.GET("/", APIInfo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var response struct {
		Message   string            `json:"message"`
		Endpoints map[string]string `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Todo List REST API", response.Message)
	assert.Contains(t, response.Endpoints, "GET /api/todos")
	assert.Contains(t, response.Endpoints, "POST /api/todos")
	assert.Contains(t, response.Endpoints, "DELETE /api/todos/<id>")
}

// =============================================================================
// API Documentation Tests
// =============================================================================

func TestAPISpec_ServesValidJSON(t *testing.T) {
	router := gin.New()
	router.GET("/apispec.json", APISpec)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/apispec.json", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var spec map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &spec))

	paths, ok := spec["paths"].(map[string]any)
	require.True(t, ok, "spec must contain a paths object")
	assert.Contains(t, paths, "/api/todos")
	assert.Contains(t, paths, "/api/todos/{id}")
}

func TestAPIDocs_ServesHTML(t *testing.T) {
	router := gin.New()
	router.GET("/api-docs", APIDocs)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api-docs", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "/apispec.json")
}
