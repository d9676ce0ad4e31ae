package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/qassab/loyalty-core/internal/app/models"
	"github.com/qassab/loyalty-core/internal/infrastructures"
	"github.com/qassab/loyalty-core/pkg/keylock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database with the full schema.
// A single pooled connection keeps the in-memory database alive and
// serializes sqlite access under concurrent tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, infrastructures.Migrate(db))

	return db
}

// testStack wires the loyalty services against a test database, without
// redis, webhooks or wallet sync.
type testStack struct {
	db          *gorm.DB
	ledger      *LedgerService
	customers   *CustomerService
	vouchers    *VoucherService
	audit       *AuditService
	adjustments *AdjustmentService
	redemptions *RedemptionService
	balances    *BalanceService
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	db := setupTestDB(t)
	validator := infrastructures.NewValidator()
	locks := keylock.New()

	ledger := NewLedgerService(db)
	customers := NewCustomerService(db, validator)
	vouchers := NewVoucherService(db)
	audit := NewAuditService(db)

	return &testStack{
		db:          db,
		ledger:      ledger,
		customers:   customers,
		vouchers:    vouchers,
		audit:       audit,
		adjustments: NewAdjustmentService(db, ledger, customers, audit, nil, locks),
		redemptions: NewRedemptionService(db, ledger, vouchers, customers, audit, nil, locks),
		balances:    NewBalanceService(ledger, customers),
	}
}

func (s *testStack) createCustomer(t *testing.T, name string) *models.Customer {
	t.Helper()

	customer, err := s.customers.CreateCustomer(&models.CustomerCreateRequest{
		FullName: name,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, customer.ID)

	return customer
}
