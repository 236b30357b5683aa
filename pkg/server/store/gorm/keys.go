package gorm

import (
	"strings"

	"gorm.io/gorm"

	"github.com/configvault/config-vault/pkg/model"
	"github.com/configvault/config-vault/pkg/server/store"
)

// Ensure KeysStore implements store.KeysStore
var _ store.KeysStore = (*KeysStore)(nil)

// KeysStore implements store.KeysStore using GORM
type KeysStore struct {
	db *gorm.DB
}

// NewKeysStore creates a new KeysStore
func NewKeysStore(db *gorm.DB) *KeysStore {
	return &KeysStore{db: db}
}

// CreateKeyPair persists a freshly issued key pair.
func (s *KeysStore) CreateKeyPair(keyPair *model.RSAKeyPair) error {
	if err := s.db.Create(keyPair).Error; err != nil {
		return translateKeyPairWriteError(err)
	}
	return nil
}

// translateKeyPairWriteError maps constraint violations onto the store
// sentinels. The issuance handler pre-checks the tenant and site, but the
// referenced row can be deleted between that check and the insert.
func translateKeyPairWriteError(err error) error {
	switch {
	case isUniqueViolation(err):
		return store.ErrKidTaken
	case isForeignKeyViolation(err):
		if strings.Contains(violatedConstraint(err), "site") {
			return store.ErrSiteNotFound
		}
		return store.ErrTenantNotFound
	}
	return err
}

// GetKeyPair retrieves a key pair by internal ID.
func (s *KeysStore) GetKeyPair(id string) (*model.RSAKeyPair, error) {
	var keyPair model.RSAKeyPair
	tx := s.db.Where("id = ?", id).First(&keyPair)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrKeyPairNotFound
		}
		return nil, tx.Error
	}
	return &keyPair, nil
}

// GetKeyPairByKid retrieves a key pair by its public key identifier.
func (s *KeysStore) GetKeyPairByKid(kid string) (*model.RSAKeyPair, error) {
	var keyPair model.RSAKeyPair
	tx := s.db.Where("kid = ?", kid).First(&keyPair)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrKeyPairNotFound
		}
		return nil, tx.Error
	}
	return &keyPair, nil
}

// ListKeyPairsByTenant returns the tenant's key pairs. The active filter
// only consults status; expired-but-active keys still show up.
func (s *KeysStore) ListKeyPairsByTenant(tenantID string, activeOnly bool) ([]model.RSAKeyPair, error) {
	keyPairs := make([]model.RSAKeyPair, 0)
	query := s.db.Where("tenant_id = ?", tenantID)
	if activeOnly {
		query = query.Where("status = ?", model.KeyStatusActive)
	}
	tx := query.Order("created_at").Find(&keyPairs)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return keyPairs, nil
}

// ListKeyPairsBySite returns the site's key pairs.
func (s *KeysStore) ListKeyPairsBySite(siteID string, activeOnly bool) ([]model.RSAKeyPair, error) {
	keyPairs := make([]model.RSAKeyPair, 0)
	query := s.db.Where("site_id = ?", siteID)
	if activeOnly {
		query = query.Where("status = ?", model.KeyStatusActive)
	}
	tx := query.Order("created_at").Find(&keyPairs)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return keyPairs, nil
}

// UpdateKeyPairStatus sets the lifecycle status of a key pair.
func (s *KeysStore) UpdateKeyPairStatus(id string, status model.KeyStatus) (*model.RSAKeyPair, error) {
	keyPair, err := s.GetKeyPair(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(keyPair).Update("status", status).Error; err != nil {
		return nil, err
	}
	return keyPair, nil
}

// DeleteKeyPair permanently removes a key pair.
func (s *KeysStore) DeleteKeyPair(id string) (*model.RSAKeyPair, error) {
	keyPair, err := s.GetKeyPair(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Where("id = ?", id).Delete(&model.RSAKeyPair{}).Error; err != nil {
		return nil, err
	}
	return keyPair, nil
}
