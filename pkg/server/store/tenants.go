package store

import (
	"errors"

	"github.com/configvault/config-vault/pkg/model"
)

// ErrTenantNotFound is returned when a tenant doesn't exist
var ErrTenantNotFound = errors.New("tenant not found")

// ErrTenantDomainTaken is returned when a tenant domain is already registered
var ErrTenantDomainTaken = errors.New("tenant domain already registered")

// TenantUpdate carries the mutable tenant attributes for a partial update.
// Nil fields are left unchanged.
type TenantUpdate struct {
	Name     *string
	Domain   *string
	IsActive *bool
}

// TenantsStore abstracts tenant storage operations
type TenantsStore interface {
	// CreateTenant persists a new tenant.
	// Returns ErrTenantDomainTaken if the domain is already registered.
	CreateTenant(tenant *model.Tenant) error

	// GetTenant retrieves a tenant by ID.
	// Returns ErrTenantNotFound if the tenant doesn't exist.
	GetTenant(id string) (*model.Tenant, error)

	// GetTenantByDomain retrieves a tenant by its unique domain.
	// Returns ErrTenantNotFound if no tenant owns the domain.
	GetTenantByDomain(domain string) (*model.Tenant, error)

	// ListTenants returns a page of tenants ordered by creation time.
	ListTenants(offset, limit int) ([]model.Tenant, error)

	// UpdateTenant applies a partial update to a tenant.
	// Returns ErrTenantNotFound if the tenant doesn't exist and
	// ErrTenantDomainTaken if the new domain is already registered.
	UpdateTenant(id string, update TenantUpdate) (*model.Tenant, error)

	// DeleteTenant deletes a tenant along with its sites and key pairs,
	// returning a snapshot of the deleted tenant.
	// Returns ErrTenantNotFound if the tenant doesn't exist.
	DeleteTenant(id string) (*model.Tenant, error)
}
