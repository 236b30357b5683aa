package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/configvault/config-vault/pkg/model"
	"github.com/configvault/config-vault/pkg/server/store"
)

// MockTenantsStore implements store.TenantsStore for testing using testify/mock
type MockTenantsStore struct {
	mock.Mock
}

func NewMockTenantsStore() *MockTenantsStore {
	return &MockTenantsStore{}
}

func (m *MockTenantsStore) CreateTenant(tenant *model.Tenant) error {
	args := m.Called(tenant)
	return args.Error(0)
}

func (m *MockTenantsStore) GetTenant(id string) (*model.Tenant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tenant), args.Error(1)
}

func (m *MockTenantsStore) GetTenantByDomain(domain string) (*model.Tenant, error) {
	args := m.Called(domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tenant), args.Error(1)
}

func (m *MockTenantsStore) ListTenants(offset, limit int) ([]model.Tenant, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tenant), args.Error(1)
}

func (m *MockTenantsStore) UpdateTenant(id string, update store.TenantUpdate) (*model.Tenant, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tenant), args.Error(1)
}

func (m *MockTenantsStore) DeleteTenant(id string) (*model.Tenant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tenant), args.Error(1)
}

// MockSitesStore implements store.SitesStore for testing using testify/mock
type MockSitesStore struct {
	mock.Mock
}

func NewMockSitesStore() *MockSitesStore {
	return &MockSitesStore{}
}

func (m *MockSitesStore) CreateSite(site *model.Site) error {
	args := m.Called(site)
	return args.Error(0)
}

func (m *MockSitesStore) GetSite(id string) (*model.Site, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Site), args.Error(1)
}

func (m *MockSitesStore) GetSiteByDomain(domain string) (*model.Site, error) {
	args := m.Called(domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Site), args.Error(1)
}

func (m *MockSitesStore) ListSites(offset, limit int) ([]model.Site, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Site), args.Error(1)
}

func (m *MockSitesStore) ListSitesByTenant(tenantID string, offset, limit int) ([]model.Site, error) {
	args := m.Called(tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Site), args.Error(1)
}

func (m *MockSitesStore) UpdateSite(id string, update store.SiteUpdate) (*model.Site, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Site), args.Error(1)
}

func (m *MockSitesStore) DeleteSite(id string) (*model.Site, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Site), args.Error(1)
}

// MockKeysStore implements store.KeysStore for testing using testify/mock
type MockKeysStore struct {
	mock.Mock
}

func NewMockKeysStore() *MockKeysStore {
	return &MockKeysStore{}
}

func (m *MockKeysStore) CreateKeyPair(keyPair *model.RSAKeyPair) error {
	args := m.Called(keyPair)
	return args.Error(0)
}

func (m *MockKeysStore) GetKeyPair(id string) (*model.RSAKeyPair, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RSAKeyPair), args.Error(1)
}

func (m *MockKeysStore) GetKeyPairByKid(kid string) (*model.RSAKeyPair, error) {
	args := m.Called(kid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RSAKeyPair), args.Error(1)
}

func (m *MockKeysStore) ListKeyPairsByTenant(tenantID string, activeOnly bool) ([]model.RSAKeyPair, error) {
	args := m.Called(tenantID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RSAKeyPair), args.Error(1)
}

func (m *MockKeysStore) ListKeyPairsBySite(siteID string, activeOnly bool) ([]model.RSAKeyPair, error) {
	args := m.Called(siteID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RSAKeyPair), args.Error(1)
}

func (m *MockKeysStore) UpdateKeyPairStatus(id string, status model.KeyStatus) (*model.RSAKeyPair, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RSAKeyPair), args.Error(1)
}

func (m *MockKeysStore) DeleteKeyPair(id string) (*model.RSAKeyPair, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RSAKeyPair), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}
