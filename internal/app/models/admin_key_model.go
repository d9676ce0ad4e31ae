package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminKey authenticates staff calls to the points endpoints. The key value
// itself is generated and checked by pkg/adminkey; the admin id it resolves
// to becomes the actor on ledger entries.
type AdminKey struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID    uuid.UUID      `json:"admin_id" gorm:"type:uuid;not null;index"`
	KeyName    string         `json:"key_name" gorm:"type:varchar(100);not null"`
	Key        string         `json:"-" gorm:"type:varchar(100);not null;uniqueIndex"`
	LastUsedAt *time.Time     `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time     `json:"expires_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

func (k *AdminKey) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}

// IsExpired checks if the key is past its expiry, if one is set.
func (k *AdminKey) IsExpired() bool {
	if k.ExpiresAt == nil {
		return false
	}
	return time.Now().After(*k.ExpiresAt)
}
