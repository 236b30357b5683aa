package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/configvault/config-vault/pkg/model"
	"github.com/configvault/config-vault/pkg/server/store"
)

func TestCreateSite(t *testing.T) {
	sites := NewMockSitesStore()
	srv := newTestServer(NewMockTenantsStore(), sites, NewMockKeysStore(), NewMockHealthStore())

	sites.On("CreateSite", mock.AnythingOfType("*model.Site")).
		Run(func(args mock.Arguments) {
			site := args.Get(0).(*model.Site)
			site.ID = "site-1"
		}).
		Return(nil)

	body := `{"name":"Main","domain":"acme.com/site","tenant_id":"tenant-1"}`
	req := httptest.NewRequest("POST", "/sites", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp SiteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "site-1", resp.ID)
	assert.Equal(t, "tenant-1", resp.TenantID)
	assert.True(t, resp.IsActive)
}

func TestCreateSiteTenantMissing(t *testing.T) {
	sites := NewMockSitesStore()
	srv := newTestServer(NewMockTenantsStore(), sites, NewMockKeysStore(), NewMockHealthStore())

	sites.On("CreateSite", mock.AnythingOfType("*model.Site")).
		Return(store.ErrTenantNotFound)

	body := `{"name":"Main","domain":"acme.com/site","tenant_id":"missing"}`
	req := httptest.NewRequest("POST", "/sites", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateSiteDomainConflict(t *testing.T) {
	sites := NewMockSitesStore()
	srv := newTestServer(NewMockTenantsStore(), sites, NewMockKeysStore(), NewMockHealthStore())

	sites.On("CreateSite", mock.AnythingOfType("*model.Site")).
		Return(store.ErrSiteDomainTaken)

	body := `{"name":"Main","domain":"acme.com/site","tenant_id":"tenant-1"}`
	req := httptest.NewRequest("POST", "/sites", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListSitesByTenantFilter(t *testing.T) {
	sites := NewMockSitesStore()
	srv := newTestServer(NewMockTenantsStore(), sites, NewMockKeysStore(), NewMockHealthStore())

	sites.On("ListSitesByTenant", "tenant-1", 0, 100).Return([]model.Site{
		{ID: "site-1", Name: "Main", Domain: "acme.com/site", TenantID: "tenant-1", IsActive: true},
	}, nil)

	req := httptest.NewRequest("GET", "/sites?tenant_id=tenant-1", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []SiteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "site-1", resp[0].ID)

	sites.AssertExpectations(t)
}

func TestDeleteSiteNotFound(t *testing.T) {
	sites := NewMockSitesStore()
	srv := newTestServer(NewMockTenantsStore(), sites, NewMockKeysStore(), NewMockHealthStore())

	sites.On("DeleteSite", "missing").Return(nil, store.ErrSiteNotFound)

	req := httptest.NewRequest("DELETE", "/sites/missing", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
