package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Voucher is the spendable result of a redemption. A voucher exists iff
// exactly one REDEEMED ledger entry references it with the opposite amount.
// is_used/is_active are flipped later by the point-of-sale collaborator,
// never by the core.
type Voucher struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Code           string          `json:"code" gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID     uuid.UUID       `json:"customer_id" gorm:"type:uuid;not null;index"`
	PointsRedeemed int64           `json:"points_redeemed" gorm:"not null"`
	Value          decimal.Decimal `json:"value" gorm:"type:decimal(18,2);not null"`
	Currency       string          `json:"currency" gorm:"type:varchar(3);not null"`
	IsActive       bool            `json:"is_active" gorm:"not null;default:true"`
	IsUsed         bool            `json:"is_used" gorm:"not null;default:false"`
	ExpiresAt      time.Time       `json:"expires_at" gorm:"not null"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	CreatedBy      *uuid.UUID      `json:"created_by,omitempty" gorm:"type:uuid"`
}

func (v *Voucher) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

type RedeemRequest struct {
	Points      int64  `json:"points" validate:"required,gt=0"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type RedeemResponse struct {
	VoucherCode string          `json:"voucher_code"`
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency"`
	ExpiresAt   time.Time       `json:"expires_at"`
}
