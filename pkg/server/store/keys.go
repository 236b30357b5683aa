package store

import (
	"errors"

	"github.com/configvault/config-vault/pkg/model"
)

// ErrKeyPairNotFound is returned when a key pair doesn't exist
var ErrKeyPairNotFound = errors.New("key pair not found")

// ErrKidTaken is returned when a generated key identifier collides with an
// existing one. With a 62^16 identifier space this is practically never hit,
// but the unique index keeps a collision from corrupting lookups.
var ErrKidTaken = errors.New("key identifier already in use")

// KeysStore abstracts RSA key pair storage operations
type KeysStore interface {
	// CreateKeyPair persists a freshly issued key pair.
	// Returns ErrKidTaken if the kid collides with an existing key pair.
	CreateKeyPair(keyPair *model.RSAKeyPair) error

	// GetKeyPair retrieves a key pair by internal ID.
	// Returns ErrKeyPairNotFound if the key pair doesn't exist.
	GetKeyPair(id string) (*model.RSAKeyPair, error)

	// GetKeyPairByKid retrieves a key pair by its public key identifier.
	// Returns ErrKeyPairNotFound if no key pair carries the kid.
	GetKeyPairByKid(kid string) (*model.RSAKeyPair, error)

	// ListKeyPairsByTenant returns the tenant's key pairs. When activeOnly
	// is set, only key pairs with active status are returned; expiry is
	// not consulted.
	ListKeyPairsByTenant(tenantID string, activeOnly bool) ([]model.RSAKeyPair, error)

	// ListKeyPairsBySite returns the site's key pairs, optionally
	// filtered to active status.
	ListKeyPairsBySite(siteID string, activeOnly bool) ([]model.RSAKeyPair, error)

	// UpdateKeyPairStatus sets the lifecycle status of a key pair.
	// Setting the current status again succeeds and only touches the
	// update timestamp.
	// Returns ErrKeyPairNotFound if the key pair doesn't exist.
	UpdateKeyPairStatus(id string, status model.KeyStatus) (*model.RSAKeyPair, error)

	// DeleteKeyPair permanently removes a key pair, returning a snapshot
	// of the deleted record.
	// Returns ErrKeyPairNotFound if the key pair doesn't exist.
	DeleteKeyPair(id string) (*model.RSAKeyPair, error)
}
