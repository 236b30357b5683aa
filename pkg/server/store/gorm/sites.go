package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/configvault/config-vault/pkg/model"
	"github.com/configvault/config-vault/pkg/server/store"
)

// Ensure SitesStore implements store.SitesStore
var _ store.SitesStore = (*SitesStore)(nil)

// SitesStore implements store.SitesStore using GORM
type SitesStore struct {
	db *gorm.DB
}

// NewSitesStore creates a new SitesStore
func NewSitesStore(db *gorm.DB) *SitesStore {
	return &SitesStore{db: db}
}

// CreateSite persists a new site after validating its tenant reference and
// domain uniqueness.
func (s *SitesStore) CreateSite(site *model.Site) error {
	var count int64
	if err := s.db.Model(&model.Tenant{}).Where("id = ?", site.TenantID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return store.ErrTenantNotFound
	}

	if _, err := s.GetSiteByDomain(site.Domain); err == nil {
		return store.ErrSiteDomainTaken
	} else if !errors.Is(err, store.ErrSiteNotFound) {
		return err
	}

	if err := s.db.Create(site).Error; err != nil {
		if isUniqueViolation(err) {
			return store.ErrSiteDomainTaken
		}
		if isForeignKeyViolation(err) {
			return store.ErrTenantNotFound
		}
		return err
	}
	return nil
}

// GetSite retrieves a site by ID.
func (s *SitesStore) GetSite(id string) (*model.Site, error) {
	var site model.Site
	tx := s.db.Where("id = ?", id).First(&site)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrSiteNotFound
		}
		return nil, tx.Error
	}
	return &site, nil
}

// GetSiteByDomain retrieves a site by its unique domain.
func (s *SitesStore) GetSiteByDomain(domain string) (*model.Site, error) {
	var site model.Site
	tx := s.db.Where("domain = ?", domain).First(&site)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrSiteNotFound
		}
		return nil, tx.Error
	}
	return &site, nil
}

// ListSites returns a page of sites ordered by creation time.
func (s *SitesStore) ListSites(offset, limit int) ([]model.Site, error) {
	sites := make([]model.Site, 0)
	tx := s.db.Order("created_at").Offset(offset).Limit(limit).Find(&sites)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return sites, nil
}

// ListSitesByTenant returns a page of the tenant's sites.
func (s *SitesStore) ListSitesByTenant(tenantID string, offset, limit int) ([]model.Site, error) {
	sites := make([]model.Site, 0)
	tx := s.db.Where("tenant_id = ?", tenantID).
		Order("created_at").Offset(offset).Limit(limit).Find(&sites)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return sites, nil
}

// UpdateSite applies a partial update to a site.
func (s *SitesStore) UpdateSite(id string, update store.SiteUpdate) (*model.Site, error) {
	site, err := s.GetSite(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Domain != nil {
		holder, err := s.GetSiteByDomain(*update.Domain)
		if err != nil && !errors.Is(err, store.ErrSiteNotFound) {
			return nil, err
		}
		if holder != nil && holder.ID != id {
			return nil, store.ErrSiteDomainTaken
		}
		fields["domain"] = *update.Domain
	}
	if update.IsActive != nil {
		fields["is_active"] = *update.IsActive
	}

	if len(fields) > 0 {
		if err := s.db.Model(site).Updates(fields).Error; err != nil {
			if isUniqueViolation(err) {
				return nil, store.ErrSiteDomainTaken
			}
			return nil, err
		}
	}
	return site, nil
}

// DeleteSite deletes a site along with its key pairs.
func (s *SitesStore) DeleteSite(id string) (*model.Site, error) {
	site, err := s.GetSite(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("site_id = ?", id).Delete(&model.RSAKeyPair{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Site{}).Error
	})
	if err != nil {
		return nil, err
	}
	return site, nil
}
