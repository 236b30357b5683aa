// Package store provides storage abstractions for the vault server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// This enables easier testing with mocks and potential support for different
// storage backends.
//
// # Available Stores
//
//   - TenantsStore: tenant CRUD with domain uniqueness
//   - SitesStore: site CRUD with domain uniqueness and tenant ownership
//   - KeysStore: RSA key pair persistence and lifecycle transitions
//   - HealthStore: backing store connectivity checks
//
// # Usage
//
//	tenants := gorm.NewTenantsStore(db)
//	tenant, err := tenants.GetTenant(id)
//	if err != nil {
//	    if errors.Is(err, store.ErrTenantNotFound) {
//	        // Handle not found
//	    }
//	}
package store
