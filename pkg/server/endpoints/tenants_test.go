package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/configvault/config-vault/pkg/model"
	"github.com/configvault/config-vault/pkg/server/store"
)

func TestCreateTenant(t *testing.T) {
	tenants := NewMockTenantsStore()
	srv := newTestServer(tenants, NewMockSitesStore(), NewMockKeysStore(), NewMockHealthStore())

	tenants.On("CreateTenant", mock.AnythingOfType("*model.Tenant")).
		Run(func(args mock.Arguments) {
			tenant := args.Get(0).(*model.Tenant)
			tenant.ID = "tenant-1"
			tenant.CreatedAt = time.Now()
			tenant.UpdatedAt = tenant.CreatedAt
		}).
		Return(nil)

	req := httptest.NewRequest("POST", "/tenants", strings.NewReader(`{"name":"Acme","domain":"acme.com"}`))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp TenantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tenant-1", resp.ID)
	assert.Equal(t, "Acme", resp.Name)
	assert.Equal(t, "acme.com", resp.Domain)
	assert.True(t, resp.IsActive)
	assert.False(t, resp.CreatedAt.IsZero())

	tenants.AssertExpectations(t)
}

func TestCreateTenantDomainConflict(t *testing.T) {
	tenants := NewMockTenantsStore()
	srv := newTestServer(tenants, NewMockSitesStore(), NewMockKeysStore(), NewMockHealthStore())

	tenants.On("CreateTenant", mock.AnythingOfType("*model.Tenant")).
		Return(store.ErrTenantDomainTaken)

	req := httptest.NewRequest("POST", "/tenants", strings.NewReader(`{"name":"Other","domain":"acme.com"}`))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateTenantMissingFields(t *testing.T) {
	tenants := NewMockTenantsStore()
	srv := newTestServer(tenants, NewMockSitesStore(), NewMockKeysStore(), NewMockHealthStore())

	req := httptest.NewRequest("POST", "/tenants", strings.NewReader(`{"name":"Acme"}`))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	tenants.AssertNotCalled(t, "CreateTenant", mock.Anything)
}

func TestGetTenantNotFound(t *testing.T) {
	tenants := NewMockTenantsStore()
	srv := newTestServer(tenants, NewMockSitesStore(), NewMockKeysStore(), NewMockHealthStore())

	tenants.On("GetTenant", "missing").Return(nil, store.ErrTenantNotFound)

	req := httptest.NewRequest("GET", "/tenants/missing", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTenantsPagination(t *testing.T) {
	tenants := NewMockTenantsStore()
	srv := newTestServer(tenants, NewMockSitesStore(), NewMockKeysStore(), NewMockHealthStore())

	tenants.On("ListTenants", 5, 20).Return([]model.Tenant{
		{ID: "tenant-1", Name: "Acme", Domain: "acme.com", IsActive: true},
	}, nil)

	req := httptest.NewRequest("GET", "/tenants?offset=5&limit=20", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []TenantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "acme.com", resp[0].Domain)

	tenants.AssertExpectations(t)
}

func TestUpdateTenantDomainConflict(t *testing.T) {
	tenants := NewMockTenantsStore()
	srv := newTestServer(tenants, NewMockSitesStore(), NewMockKeysStore(), NewMockHealthStore())

	tenants.On("UpdateTenant", "tenant-1", mock.AnythingOfType("store.TenantUpdate")).
		Return(nil, store.ErrTenantDomainTaken)

	req := httptest.NewRequest("PUT", "/tenants/tenant-1", strings.NewReader(`{"domain":"taken.com"}`))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateTenantPartialFields(t *testing.T) {
	tenants := NewMockTenantsStore()
	srv := newTestServer(tenants, NewMockSitesStore(), NewMockKeysStore(), NewMockHealthStore())

	tenants.On("UpdateTenant", "tenant-1", mock.MatchedBy(func(update store.TenantUpdate) bool {
		return update.Name != nil && *update.Name == "Renamed" &&
			update.Domain == nil && update.IsActive == nil
	})).Return(&model.Tenant{ID: "tenant-1", Name: "Renamed", Domain: "acme.com", IsActive: true}, nil)

	req := httptest.NewRequest("PUT", "/tenants/tenant-1", strings.NewReader(`{"name":"Renamed"}`))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	tenants.AssertExpectations(t)
}

func TestDeleteTenantReturnsSnapshot(t *testing.T) {
	tenants := NewMockTenantsStore()
	srv := newTestServer(tenants, NewMockSitesStore(), NewMockKeysStore(), NewMockHealthStore())

	tenants.On("DeleteTenant", "tenant-1").
		Return(&model.Tenant{ID: "tenant-1", Name: "Acme", Domain: "acme.com", IsActive: true}, nil)

	req := httptest.NewRequest("DELETE", "/tenants/tenant-1", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp TenantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "acme.com", resp.Domain)
}
