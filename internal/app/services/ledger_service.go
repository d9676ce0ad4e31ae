package services

import (
	"github.com/google/uuid"
	"github.com/qassab/loyalty-core/internal/app/errors"
	"github.com/qassab/loyalty-core/internal/app/models"
	"gorm.io/gorm"
)

// LedgerService is the append-only store of signed point entries. A
// customer's balance is always the sum of their entries; nothing in the core
// updates or deletes an entry once written.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{
		db: db,
	}
}

// Append durably persists a new ledger entry and returns it with its
// assigned id and timestamp. Zero amounts are rejected: they would be
// invisible in the balance and only pollute history.
func (s *LedgerService) Append(entry *models.LedgerEntry) (*models.LedgerEntry, error) {
	return s.AppendTx(s.db, entry)
}

// AppendTx is Append inside an existing transaction.
func (s *LedgerService) AppendTx(tx *gorm.DB, entry *models.LedgerEntry) (*models.LedgerEntry, error) {
	if entry.Amount == 0 {
		return nil, errors.NewValidationError("Ledger entry amount must not be zero")
	}

	if entry.Kind != models.LedgerEntryKindEarned &&
		entry.Kind != models.LedgerEntryKindAdjusted &&
		entry.Kind != models.LedgerEntryKindRedeemed {
		return nil, errors.NewValidationError("Unknown ledger entry kind")
	}

	if err := tx.Create(entry).Error; err != nil {
		return nil, errors.NewStorageError(err, "Failed to append ledger entry")
	}

	return entry, nil
}

// BalanceOf returns the signed sum of all entries for a customer. A customer
// with no entries has balance zero.
func (s *LedgerService) BalanceOf(customerID uuid.UUID) (int64, error) {
	return s.BalanceOfTx(s.db, customerID)
}

// BalanceOfTx is BalanceOf inside an existing transaction.
func (s *LedgerService) BalanceOfTx(tx *gorm.DB, customerID uuid.UUID) (int64, error) {
	var balance int64
	err := tx.Model(&models.LedgerEntry{}).
		Where("customer_id = ?", customerID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&balance).Error
	if err != nil {
		return 0, errors.NewStorageError(err, "Failed to compute balance")
	}

	return balance, nil
}

// GetEntriesByCustomer returns the customer's history, most recent first.
func (s *LedgerService) GetEntriesByCustomer(customerID uuid.UUID, pagination *models.PaginationRequest) (*models.Pagination[[]models.LedgerEntry], error) {
	// Set defaults
	if pagination.Limit <= 0 {
		pagination.Limit = 10
	}
	if pagination.Page <= 0 {
		pagination.Page = 1
	}

	offset := (pagination.Page - 1) * pagination.Limit

	var totalItems int64
	err := s.db.Model(&models.LedgerEntry{}).
		Where("customer_id = ?", customerID).
		Count(&totalItems).Error
	if err != nil {
		return nil, errors.NewStorageError(err, "Failed to count ledger entries")
	}

	var entries []models.LedgerEntry
	err = s.db.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, errors.NewStorageError(err, "Failed to get ledger entries")
	}

	totalPages := int((totalItems + int64(pagination.Limit) - 1) / int64(pagination.Limit))

	return &models.Pagination[[]models.LedgerEntry]{
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
		TotalItems: int(totalItems),
		HasNext:    pagination.Page < totalPages,
		HasPrev:    pagination.Page > 1,
		Items:      entries,
	}, nil
}
