package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditAction string

const (
	AuditActionPointsAdjusted  AuditAction = "POINTS_ADJUSTED"
	AuditActionVoucherRedeemed AuditAction = "VOUCHER_REDEEMED"
)

// AuditLog records who did what to a customer's points, next to the ledger
// itself. Written best-effort after commit.
type AuditLog struct {
	ID         uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID   `json:"customer_id" gorm:"type:uuid;not null;index"`
	RecordID   uuid.UUID   `json:"record_id" gorm:"type:uuid;not null"`
	Action     AuditAction `json:"action" gorm:"type:varchar(30);not null"`
	Data       *string     `json:"data,omitempty" gorm:"type:text"`
	ActorID    *uuid.UUID  `json:"actor_id,omitempty" gorm:"type:uuid"`
	CreatedAt  time.Time   `json:"created_at" gorm:"autoCreateTime"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
