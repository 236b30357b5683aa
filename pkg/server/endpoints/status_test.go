package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusEndpoint(t *testing.T) {
	srv := newTestServer(NewMockTenantsStore(), NewMockSitesStore(), NewMockKeysStore(), NewMockHealthStore())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "config-vault", resp.Name)
	assert.NotEmpty(t, resp.Version)
}

func TestHealthEndpoint(t *testing.T) {
	health := NewMockHealthStore()
	srv := newTestServer(NewMockTenantsStore(), NewMockSitesStore(), NewMockKeysStore(), health)

	health.On("CheckConnectivity").Return(nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthEndpointDatabaseDown(t *testing.T) {
	health := NewMockHealthStore()
	srv := newTestServer(NewMockTenantsStore(), NewMockSitesStore(), NewMockKeysStore(), health)

	health.On("CheckConnectivity").Return(errors.New("connection refused"))

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
