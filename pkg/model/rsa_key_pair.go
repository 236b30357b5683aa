package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KeyStatus is the lifecycle status of a key pair.
type KeyStatus string

const (
	// KeyStatusActive marks a key pair consumers may trust.
	KeyStatusActive KeyStatus = "active"
	// KeyStatusRevoked marks a key pair that remains stored but should be
	// treated as untrusted.
	KeyStatusRevoked KeyStatus = "revoked"
)

// Valid reports whether s is a known lifecycle status.
func (s KeyStatus) Valid() bool {
	return s == KeyStatusActive || s == KeyStatusRevoked
}

// RSAKeyPair is an RSA credential record scoped to a tenant and optionally
// narrowed to one of its sites. A nil SiteID means a tenant-level key.
//
// The private key is stored alongside the public key but is only ever
// returned to a caller once, in the issuance response.
type RSAKeyPair struct {
	ID         string     `gorm:"type:uuid;primaryKey"`
	Kid        string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	PrivateKey string     `gorm:"type:text;not null"`
	PublicKey  string     `gorm:"type:text;not null"`
	TenantID   string     `gorm:"type:uuid;not null;index"`
	SiteID     *string    `gorm:"type:uuid;index"`
	Status     KeyStatus  `gorm:"type:varchar(50);not null;default:'active'"`
	ExpiresAt  *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (RSAKeyPair) TableName() string {
	return "rsa_key_pairs"
}

func (k *RSAKeyPair) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.New().String()
	}
	return nil
}
