package store

import (
	"errors"

	"github.com/configvault/config-vault/pkg/model"
)

// ErrSiteNotFound is returned when a site doesn't exist
var ErrSiteNotFound = errors.New("site not found")

// ErrSiteDomainTaken is returned when a site domain is already registered
var ErrSiteDomainTaken = errors.New("site domain already registered")

// SiteUpdate carries the mutable site attributes for a partial update.
// Nil fields are left unchanged.
type SiteUpdate struct {
	Name     *string
	Domain   *string
	IsActive *bool
}

// SitesStore abstracts site storage operations
type SitesStore interface {
	// CreateSite persists a new site.
	// Returns ErrTenantNotFound if the owning tenant doesn't exist and
	// ErrSiteDomainTaken if the domain is already registered.
	CreateSite(site *model.Site) error

	// GetSite retrieves a site by ID.
	// Returns ErrSiteNotFound if the site doesn't exist.
	GetSite(id string) (*model.Site, error)

	// GetSiteByDomain retrieves a site by its unique domain.
	// Returns ErrSiteNotFound if no site owns the domain.
	GetSiteByDomain(domain string) (*model.Site, error)

	// ListSites returns a page of sites ordered by creation time.
	ListSites(offset, limit int) ([]model.Site, error)

	// ListSitesByTenant returns a page of the tenant's sites.
	ListSitesByTenant(tenantID string, offset, limit int) ([]model.Site, error)

	// UpdateSite applies a partial update to a site.
	// Returns ErrSiteNotFound if the site doesn't exist and
	// ErrSiteDomainTaken if the new domain is already registered.
	UpdateSite(id string, update SiteUpdate) (*model.Site, error)

	// DeleteSite deletes a site along with its key pairs, returning a
	// snapshot of the deleted site.
	// Returns ErrSiteNotFound if the site doesn't exist.
	DeleteSite(id string) (*model.Site, error)
}
