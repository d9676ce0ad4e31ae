package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LedgerEntryKind string

const (
	LedgerEntryKindEarned   LedgerEntryKind = "EARNED"
	LedgerEntryKindAdjusted LedgerEntryKind = "ADJUSTED"
	LedgerEntryKindRedeemed LedgerEntryKind = "REDEEMED"
)

// LedgerEntry is one immutable signed point change for one customer.
// The customer's balance is always the sum of their entries; entries are
// never updated or deleted by the core.
type LedgerEntry struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID       `json:"customer_id" gorm:"type:uuid;not null;index:idx_ledger_customer_created"`
	Amount       int64           `json:"amount" gorm:"not null"`
	Kind         LedgerEntryKind `json:"kind" gorm:"type:varchar(20);not null"`
	Description  string          `json:"description" gorm:"type:text"`
	ReferenceID  *uuid.UUID      `json:"reference_id,omitempty" gorm:"type:uuid"`
	ActorAdminID *uuid.UUID      `json:"actor_admin_id,omitempty" gorm:"type:uuid"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime;index:idx_ledger_customer_created"`
}

func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

type AdjustRequest struct {
	Delta       int64  `json:"delta" validate:"required"`
	Description string `json:"description" validate:"required,max=500"`
}

type AdjustResponse struct {
	EntryID    uuid.UUID `json:"entry_id"`
	NewBalance int64     `json:"new_balance"`
}

// BalanceResponse is the read-only balance projection. No write path in the
// core produces a pending state, so pending_points is always zero and
// available_points equals total_points.
type BalanceResponse struct {
	TotalPoints     int64 `json:"total_points"`
	AvailablePoints int64 `json:"available_points"`
	PendingPoints   int64 `json:"pending_points"`
}
