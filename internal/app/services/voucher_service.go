package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/qassab/loyalty-core/internal/app/errors"
	"github.com/qassab/loyalty-core/internal/app/models"
	"github.com/qassab/loyalty-core/internal/app/pkg"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// ConversionRate is the fixed number of points per currency unit.
	ConversionRate = 10

	// VoucherCurrency is the only currency the program pays out in.
	VoucherCurrency = "EUR"

	// VoucherValidityDays is how long an issued voucher stays redeemable.
	VoucherValidityDays = 365

	// MaxCodeAttempts bounds code regeneration on unique-constraint
	// collisions before giving up with a CODE_GENERATION_ERROR.
	MaxCodeAttempts = 5

	codeSegmentLength = 4
)

// VoucherService issues vouchers: it generates codes, prices points into
// currency and answers voucher lookups. Vouchers are only ever created
// inside a redemption.
type VoucherService struct {
	db *gorm.DB
}

func NewVoucherService(db *gorm.DB) *VoucherService {
	return &VoucherService{
		db: db,
	}
}

// GenerateCode produces a human-readable candidate code. Global uniqueness
// is enforced by the unique index on vouchers.code; callers retry on
// collision.
func (s *VoucherService) GenerateCode() string {
	return fmt.Sprintf("%s-%s-%s",
		pkg.RandomCode(codeSegmentLength),
		pkg.RandomCode(codeSegmentLength),
		pkg.RandomCode(codeSegmentLength),
	)
}

// ComputeValue prices redeemed points at the fixed conversion rate, rounded
// to two decimal places.
func (s *VoucherService) ComputeValue(points int64) decimal.Decimal {
	return decimal.NewFromInt(points).
		Div(decimal.NewFromInt(ConversionRate)).
		Round(2)
}

// ComputeExpiry returns the expiry for a voucher issued at the given time.
func (s *VoucherService) ComputeExpiry(now time.Time) time.Time {
	return now.AddDate(0, 0, VoucherValidityDays)
}

// CreateVoucherTx inserts a voucher inside an existing transaction.
// A duplicate code surfaces as gorm.ErrDuplicatedKey for the caller to
// regenerate and retry.
func (s *VoucherService) CreateVoucherTx(tx *gorm.DB, voucher *models.Voucher) error {
	return tx.Create(voucher).Error
}

func (s *VoucherService) GetVoucherByCode(code string) (*models.Voucher, error) {
	var voucher models.Voucher
	err := s.db.Where("code = ?", code).First(&voucher).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Voucher not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get voucher")
	}

	return &voucher, nil
}

func (s *VoucherService) GetVouchersByCustomer(customerId string, pagination *models.PaginationRequest) (*models.Pagination[[]models.Voucher], error) {
	customerUUID, err := uuid.Parse(customerId)
	if err != nil {
		return nil, errors.NewValidationError("Invalid customer ID format")
	}

	// Set defaults
	if pagination.Limit <= 0 {
		pagination.Limit = 10
	}
	if pagination.Page <= 0 {
		pagination.Page = 1
	}

	offset := (pagination.Page - 1) * pagination.Limit

	var totalItems int64
	err = s.db.Model(&models.Voucher{}).
		Where("customer_id = ?", customerUUID).
		Count(&totalItems).Error
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to count vouchers")
	}

	var vouchers []models.Voucher
	err = s.db.Where("customer_id = ?", customerUUID).
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(offset).
		Find(&vouchers).Error
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get vouchers")
	}

	totalPages := int((totalItems + int64(pagination.Limit) - 1) / int64(pagination.Limit))

	return &models.Pagination[[]models.Voucher]{
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
		TotalItems: int(totalItems),
		HasNext:    pagination.Page < totalPages,
		HasPrev:    pagination.Page > 1,
		Items:      vouchers,
	}, nil
}
