package services

import (
	"github.com/qassab/loyalty-core/internal/app/models"
	"github.com/sirupsen/logrus"
)

// BalanceService is the read-only balance projection. The ledger sum is
// authoritative; the cached column on the customer row exists only for
// display surfaces and is repaired here whenever it drifts. No write path in
// the core produces a pending state, so pending_points is always zero.
type BalanceService struct {
	ledgerService   *LedgerService
	customerService *CustomerService
}

func NewBalanceService(ledgerService *LedgerService, customerService *CustomerService) *BalanceService {
	return &BalanceService{
		ledgerService:   ledgerService,
		customerService: customerService,
	}
}

func (s *BalanceService) GetBalance(customerId string) (*models.BalanceResponse, error) {
	customer, err := s.customerService.GetCustomer(customerId)
	if err != nil {
		return nil, err
	}

	total, err := s.ledgerService.BalanceOf(customer.ID)
	if err != nil {
		return nil, err
	}

	// A diverged cache is a bug somewhere, not eventual consistency.
	// Surface it loudly and repair.
	if customer.PointsBalance != total {
		logrus.Warnf("balance cache drift for customer %s: cached %d, ledger %d", customer.ID, customer.PointsBalance, total)
		if err := s.customerService.SyncBalance(customer.ID, total); err != nil {
			logrus.Warnf("balance cache repair failed for customer %s: %v", customer.ID, err)
		}
	}

	return &models.BalanceResponse{
		TotalPoints:     total,
		AvailablePoints: total,
		PendingPoints:   0,
	}, nil
}
