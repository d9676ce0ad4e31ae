package services

import (
	"github.com/google/uuid"
	"github.com/qassab/loyalty-core/internal/app/errors"
	"github.com/qassab/loyalty-core/internal/app/models"
	"github.com/qassab/loyalty-core/pkg/keylock"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AdjustmentService appends admin-driven earn/deduct entries. The sign of
// the delta picks the entry kind; negative adjustments intentionally carry no
// sufficiency check, so staff can push a balance negative to correct
// historical mistakes.
type AdjustmentService struct {
	db              *gorm.DB
	ledgerService   *LedgerService
	customerService *CustomerService
	auditService    *AuditService
	notifier        Notifier
	locks           *keylock.KeyedMutex
}

func NewAdjustmentService(
	db *gorm.DB,
	ledgerService *LedgerService,
	customerService *CustomerService,
	auditService *AuditService,
	notifier Notifier,
	locks *keylock.KeyedMutex,
) *AdjustmentService {
	return &AdjustmentService{
		db:              db,
		ledgerService:   ledgerService,
		customerService: customerService,
		auditService:    auditService,
		notifier:        notifier,
		locks:           locks,
	}
}

// Adjust appends one signed entry for the customer and returns it together
// with the freshly recomputed balance. The append runs under the customer's
// lock so it cannot interleave with a redemption for the same customer.
func (s *AdjustmentService) Adjust(customerId string, delta int64, description string, actorAdminID *uuid.UUID) (*models.LedgerEntry, int64, error) {
	if delta == 0 {
		return nil, 0, errors.NewValidationError("Adjustment delta must not be zero")
	}

	customer, err := s.customerService.GetCustomer(customerId)
	if err != nil {
		return nil, 0, err
	}

	kind := models.LedgerEntryKindEarned
	if delta < 0 {
		kind = models.LedgerEntryKindAdjusted
	}

	s.locks.Lock(customer.ID.String())
	defer s.locks.Unlock(customer.ID.String())

	var entry *models.LedgerEntry
	var newBalance int64

	err = withStorageRetry(func() error {
		return s.db.Transaction(func(tx *gorm.DB) error {
			e := &models.LedgerEntry{
				CustomerID:   customer.ID,
				Amount:       delta,
				Kind:         kind,
				Description:  description,
				ActorAdminID: actorAdminID,
			}

			stored, err := s.ledgerService.AppendTx(tx, e)
			if err != nil {
				return err
			}

			balance, err := s.ledgerService.BalanceOfTx(tx, customer.ID)
			if err != nil {
				return err
			}

			entry = stored
			newBalance = balance
			return nil
		})
	})
	if err != nil {
		return nil, 0, err
	}

	// Post-commit side effects: activity touch, cached balance resync,
	// notification, audit. All best-effort, outside the atomic boundary.
	go s.afterAdjust(customer.ID, entry, delta, newBalance, description, actorAdminID)

	return entry, newBalance, nil
}

func (s *AdjustmentService) afterAdjust(customerID uuid.UUID, entry *models.LedgerEntry, delta, newBalance int64, description string, actorAdminID *uuid.UUID) {
	if err := s.customerService.TouchActivity(customerID); err != nil {
		logrus.Warnf("adjust: activity touch failed for customer %s: %v", customerID, err)
	}
	if err := s.customerService.SyncBalance(customerID, newBalance); err != nil {
		logrus.Warnf("adjust: balance resync failed for customer %s: %v", customerID, err)
	}
	if err := s.auditService.Log(models.AuditActionPointsAdjusted, customerID, entry.ID, entry, actorAdminID); err != nil {
		logrus.Warnf("adjust: audit log failed for customer %s: %v", customerID, err)
	}
	if s.notifier != nil {
		s.notifier.PointsAdjusted(customerID, delta, newBalance, description)
	}
}
