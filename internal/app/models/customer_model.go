package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is the slice of the customer directory the loyalty core needs:
// identity, a cached copy of the points balance and an activity timestamp.
// The cached balance is a projection of the ledger, never the source of truth.
type Customer struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	FullName       string         `json:"full_name" gorm:"type:varchar(255);not null"`
	Phone          *string        `json:"phone,omitempty" gorm:"type:varchar(30)"`
	PointsBalance  int64          `json:"points_balance" gorm:"not null;default:0"`
	LastActivityAt *time.Time     `json:"last_activity_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type CustomerCreateRequest struct {
	FullName string  `json:"full_name" validate:"required,max=255"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}
