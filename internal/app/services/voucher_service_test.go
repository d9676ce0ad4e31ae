package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qassab/loyalty-core/internal/app/models"
)

func TestVoucherService_ComputeValue(t *testing.T) {
	stack := newTestStack(t)

	cases := []struct {
		points int64
		want   string
	}{
		{points: 100, want: "10"},
		{points: 30, want: "3"},
		{points: 25, want: "2.5"},
		{points: 5, want: "0.5"},
		{points: 1, want: "0.1"},
		{points: 333, want: "33.3"},
		{points: 1234567, want: "123456.7"},
	}

	for _, tc := range cases {
		got := stack.vouchers.ComputeValue(tc.points)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"%d points: want %s, got %s", tc.points, tc.want, got)
	}
}

func TestVoucherService_ComputeExpiry(t *testing.T) {
	stack := newTestStack(t)

	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expiry := stack.vouchers.ComputeExpiry(issued)

	assert.Equal(t, issued.AddDate(0, 0, 365), expiry)
	assert.True(t, expiry.After(issued))
}

func TestVoucherService_GenerateCode(t *testing.T) {
	stack := newTestStack(t)

	format := regexp.MustCompile(`^[A-HJ-KM-NP-Z2-9]{4}-[A-HJ-KM-NP-Z2-9]{4}-[A-HJ-KM-NP-Z2-9]{4}$`)

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		code := stack.vouchers.GenerateCode()
		require.Regexp(t, format, code)

		_, dup := seen[code]
		require.False(t, dup, "duplicate code %s after %d draws", code, i)
		seen[code] = struct{}{}
	}
}

func TestVoucherService_CreateVoucherTx_DuplicateCode(t *testing.T) {
	stack := newTestStack(t)
	customer := stack.createCustomer(t, "Rania")

	build := func() *models.Voucher {
		return &models.Voucher{
			Code:           "AAAA-BBBB-CCCC",
			CustomerID:     customer.ID,
			PointsRedeemed: 10,
			Value:          stack.vouchers.ComputeValue(10),
			Currency:       VoucherCurrency,
			IsActive:       true,
			ExpiresAt:      stack.vouchers.ComputeExpiry(time.Now()),
		}
	}

	err := stack.db.Transaction(func(tx *gorm.DB) error {
		return stack.vouchers.CreateVoucherTx(tx, build())
	})
	require.NoError(t, err)

	err = stack.db.Transaction(func(tx *gorm.DB) error {
		return stack.vouchers.CreateVoucherTx(tx, build())
	})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestVoucherService_GetVoucherByCode(t *testing.T) {
	stack := newTestStack(t)

	t.Run("unknown code is not found", func(t *testing.T) {
		_, err := stack.vouchers.GetVoucherByCode("ZZZZ-ZZZZ-ZZZZ")
		require.Error(t, err)
	})

	t.Run("round trip after redemption", func(t *testing.T) {
		customer := stack.createCustomer(t, "Selim")

		_, _, err := stack.adjustments.Adjust(customer.ID.String(), 50, "earn", nil)
		require.NoError(t, err)

		issued, err := stack.redemptions.Redeem(customer.ID.String(), 50, "lookup", nil)
		require.NoError(t, err)

		found, err := stack.vouchers.GetVoucherByCode(issued.Code)
		require.NoError(t, err)
		assert.Equal(t, issued.ID, found.ID)
		assert.True(t, issued.Value.Equal(found.Value))
	})
}
