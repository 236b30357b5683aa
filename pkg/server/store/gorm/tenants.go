package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/configvault/config-vault/pkg/model"
	"github.com/configvault/config-vault/pkg/server/store"
)

// Ensure TenantsStore implements store.TenantsStore
var _ store.TenantsStore = (*TenantsStore)(nil)

// TenantsStore implements store.TenantsStore using GORM
type TenantsStore struct {
	db *gorm.DB
}

// NewTenantsStore creates a new TenantsStore
func NewTenantsStore(db *gorm.DB) *TenantsStore {
	return &TenantsStore{db: db}
}

// CreateTenant persists a new tenant.
func (s *TenantsStore) CreateTenant(tenant *model.Tenant) error {
	if _, err := s.GetTenantByDomain(tenant.Domain); err == nil {
		return store.ErrTenantDomainTaken
	} else if !errors.Is(err, store.ErrTenantNotFound) {
		return err
	}

	if err := s.db.Create(tenant).Error; err != nil {
		if isUniqueViolation(err) {
			return store.ErrTenantDomainTaken
		}
		return err
	}
	return nil
}

// GetTenant retrieves a tenant by ID.
func (s *TenantsStore) GetTenant(id string) (*model.Tenant, error) {
	var tenant model.Tenant
	tx := s.db.Where("id = ?", id).First(&tenant)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrTenantNotFound
		}
		return nil, tx.Error
	}
	return &tenant, nil
}

// GetTenantByDomain retrieves a tenant by its unique domain.
func (s *TenantsStore) GetTenantByDomain(domain string) (*model.Tenant, error) {
	var tenant model.Tenant
	tx := s.db.Where("domain = ?", domain).First(&tenant)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrTenantNotFound
		}
		return nil, tx.Error
	}
	return &tenant, nil
}

// ListTenants returns a page of tenants ordered by creation time.
func (s *TenantsStore) ListTenants(offset, limit int) ([]model.Tenant, error) {
	tenants := make([]model.Tenant, 0)
	tx := s.db.Order("created_at").Offset(offset).Limit(limit).Find(&tenants)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tenants, nil
}

// UpdateTenant applies a partial update to a tenant.
func (s *TenantsStore) UpdateTenant(id string, update store.TenantUpdate) (*model.Tenant, error) {
	tenant, err := s.GetTenant(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Domain != nil {
		holder, err := s.GetTenantByDomain(*update.Domain)
		if err != nil && !errors.Is(err, store.ErrTenantNotFound) {
			return nil, err
		}
		if holder != nil && holder.ID != id {
			return nil, store.ErrTenantDomainTaken
		}
		fields["domain"] = *update.Domain
	}
	if update.IsActive != nil {
		fields["is_active"] = *update.IsActive
	}

	if len(fields) > 0 {
		if err := s.db.Model(tenant).Updates(fields).Error; err != nil {
			if isUniqueViolation(err) {
				return nil, store.ErrTenantDomainTaken
			}
			return nil, err
		}
	}
	return tenant, nil
}

// DeleteTenant deletes a tenant along with its sites and key pairs.
func (s *TenantsStore) DeleteTenant(id string) (*model.Tenant, error) {
	tenant, err := s.GetTenant(id)
	if err != nil {
		return nil, err
	}

	// App-level cascade; the schema's ON DELETE CASCADE covers the same
	// ground if a future write path skips this transaction.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ?", id).Delete(&model.RSAKeyPair{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tenant_id = ?", id).Delete(&model.Site{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Tenant{}).Error
	})
	if err != nil {
		return nil, err
	}
	return tenant, nil
}
