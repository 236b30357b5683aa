package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Site is a domain-scoped sub-resource belonging to exactly one tenant.
// Site domains form their own uniqueness scope, independent of tenant
// domains.
type Site struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Domain    string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	TenantID  string    `gorm:"type:uuid;not null;index"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Site) TableName() string {
	return "sites"
}

func (s *Site) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
