package services

import (
	"testing"

	"github.com/qassab/loyalty-core/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceService_GetBalance(t *testing.T) {
	stack := newTestStack(t)

	t.Run("new customer starts at zero", func(t *testing.T) {
		customer := stack.createCustomer(t, "Tarek")

		balance, err := stack.balances.GetBalance(customer.ID.String())
		require.NoError(t, err)

		assert.Equal(t, int64(0), balance.TotalPoints)
		assert.Equal(t, int64(0), balance.AvailablePoints)
		assert.Equal(t, int64(0), balance.PendingPoints)
	})

	t.Run("available equals total and pending stays zero", func(t *testing.T) {
		customer := stack.createCustomer(t, "Umut")

		_, err := stack.ledger.Append(&models.LedgerEntry{
			CustomerID: customer.ID,
			Amount:     120,
			Kind:       models.LedgerEntryKindEarned,
		})
		require.NoError(t, err)
		_, err = stack.ledger.Append(&models.LedgerEntry{
			CustomerID: customer.ID,
			Amount:     -45,
			Kind:       models.LedgerEntryKindAdjusted,
		})
		require.NoError(t, err)

		balance, err := stack.balances.GetBalance(customer.ID.String())
		require.NoError(t, err)

		assert.Equal(t, int64(75), balance.TotalPoints)
		assert.Equal(t, balance.TotalPoints, balance.AvailablePoints)
		assert.Equal(t, int64(0), balance.PendingPoints)
	})

	t.Run("reads do not change the balance", func(t *testing.T) {
		customer := stack.createCustomer(t, "Vera")

		_, err := stack.ledger.Append(&models.LedgerEntry{
			CustomerID: customer.ID,
			Amount:     33,
			Kind:       models.LedgerEntryKindEarned,
		})
		require.NoError(t, err)

		first, err := stack.balances.GetBalance(customer.ID.String())
		require.NoError(t, err)
		second, err := stack.balances.GetBalance(customer.ID.String())
		require.NoError(t, err)

		assert.Equal(t, first.TotalPoints, second.TotalPoints)
	})

	t.Run("repairs a drifted cache from the ledger", func(t *testing.T) {
		customer := stack.createCustomer(t, "Walid")

		// Write to the ledger without touching the cached column.
		_, err := stack.ledger.Append(&models.LedgerEntry{
			CustomerID: customer.ID,
			Amount:     90,
			Kind:       models.LedgerEntryKindEarned,
		})
		require.NoError(t, err)

		balance, err := stack.balances.GetBalance(customer.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(90), balance.TotalPoints)

		// The cached column now matches the ledger again.
		refreshed, err := stack.customers.GetCustomer(customer.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(90), refreshed.PointsBalance)
	})
}
