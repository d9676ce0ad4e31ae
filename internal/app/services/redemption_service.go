package services

import (
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/qassab/loyalty-core/internal/app/errors"
	"github.com/qassab/loyalty-core/internal/app/models"
	"github.com/qassab/loyalty-core/pkg/keylock"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RedemptionService converts a positive point balance into a spendable
// voucher. The whole protocol for one customer runs inside that customer's
// exclusive lock: recheck the balance, then commit the voucher and its
// REDEEMED ledger entry in a single transaction. Two concurrent redemptions
// for the same customer therefore cannot both pass the balance check, which
// is the double-spend guarantee.
type RedemptionService struct {
	db              *gorm.DB
	ledgerService   *LedgerService
	voucherService  *VoucherService
	customerService *CustomerService
	auditService    *AuditService
	notifier        Notifier
	locks           *keylock.KeyedMutex
}

func NewRedemptionService(
	db *gorm.DB,
	ledgerService *LedgerService,
	voucherService *VoucherService,
	customerService *CustomerService,
	auditService *AuditService,
	notifier Notifier,
	locks *keylock.KeyedMutex,
) *RedemptionService {
	return &RedemptionService{
		db:              db,
		ledgerService:   ledgerService,
		voucherService:  voucherService,
		customerService: customerService,
		auditService:    auditService,
		notifier:        notifier,
		locks:           locks,
	}
}

// Redeem exchanges pointsRequested of the customer's balance for a new
// voucher. It fails with a VALIDATION_ERROR for non-positive amounts and
// with INSUFFICIENT_BALANCE (carrying the actual balance) when the customer
// cannot cover the request. Once the transaction commits the result is
// final; reversal means a new adjustment entry, never a mutation of history.
func (s *RedemptionService) Redeem(customerId string, pointsRequested int64, description string, actorAdminID *uuid.UUID) (*models.Voucher, error) {
	if pointsRequested <= 0 {
		return nil, errors.NewValidationError("Points to redeem must be a positive integer")
	}

	customer, err := s.customerService.GetCustomer(customerId)
	if err != nil {
		return nil, err
	}

	s.locks.Lock(customer.ID.String())
	defer s.locks.Unlock(customer.ID.String())

	// The balance is recomputed inside the lock: a value read before
	// acquisition could already be stale.
	balance, err := s.ledgerService.BalanceOf(customer.ID)
	if err != nil {
		return nil, err
	}

	if balance < pointsRequested {
		return nil, errors.NewInsufficientBalanceError(balance, pointsRequested)
	}

	voucher, err := s.commitRedemption(customer.ID, pointsRequested, description, actorAdminID)
	if err != nil {
		return nil, err
	}

	newBalance := balance - pointsRequested

	go s.afterRedeem(customer.ID, voucher, newBalance, actorAdminID)

	return voucher, nil
}

// commitRedemption creates the voucher and its ledger entry atomically.
// A voucher code collision aborts the transaction and retries with a fresh
// code up to MaxCodeAttempts; transient storage failures retry the whole
// transaction, never a partial sub-step.
func (s *RedemptionService) commitRedemption(customerID uuid.UUID, points int64, description string, actorAdminID *uuid.UUID) (*models.Voucher, error) {
	now := time.Now()

	for attempt := 1; attempt <= MaxCodeAttempts; attempt++ {
		voucher := &models.Voucher{
			Code:           s.voucherService.GenerateCode(),
			CustomerID:     customerID,
			PointsRedeemed: points,
			Value:          s.voucherService.ComputeValue(points),
			Currency:       VoucherCurrency,
			IsActive:       true,
			IsUsed:         false,
			ExpiresAt:      s.voucherService.ComputeExpiry(now),
			CreatedBy:      actorAdminID,
		}

		err := withStorageRetry(func() error {
			return s.db.Transaction(func(tx *gorm.DB) error {
				if err := s.voucherService.CreateVoucherTx(tx, voucher); err != nil {
					return err
				}

				entry := &models.LedgerEntry{
					CustomerID:   customerID,
					Amount:       -points,
					Kind:         models.LedgerEntryKindRedeemed,
					Description:  description,
					ReferenceID:  &voucher.ID,
					ActorAdminID: actorAdminID,
				}

				_, err := s.ledgerService.AppendTx(tx, entry)
				return err
			})
		})
		if err == nil {
			return voucher, nil
		}

		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			logrus.Warnf("redeem: voucher code collision on attempt %d/%d", attempt, MaxCodeAttempts)
			// Reset the id: the colliding insert may have assigned one.
			voucher.ID = uuid.Nil
			continue
		}

		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return nil, err
		}
		return nil, errors.NewStorageError(err, "Failed to commit redemption")
	}

	return nil, errors.NewCodeGenerationError(MaxCodeAttempts)
}

func (s *RedemptionService) afterRedeem(customerID uuid.UUID, voucher *models.Voucher, newBalance int64, actorAdminID *uuid.UUID) {
	if err := s.customerService.TouchActivity(customerID); err != nil {
		logrus.Warnf("redeem: activity touch failed for customer %s: %v", customerID, err)
	}
	if err := s.customerService.SyncBalance(customerID, newBalance); err != nil {
		logrus.Warnf("redeem: balance resync failed for customer %s: %v", customerID, err)
	}
	if err := s.auditService.Log(models.AuditActionVoucherRedeemed, customerID, voucher.ID, voucher, actorAdminID); err != nil {
		logrus.Warnf("redeem: audit log failed for customer %s: %v", customerID, err)
	}
	if s.notifier != nil {
		s.notifier.VoucherIssued(customerID, voucher, newBalance)
	}
}
