package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/qassab/loyalty-core/internal/app/errors"
	"github.com/qassab/loyalty-core/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerService_Append(t *testing.T) {
	stack := newTestStack(t)
	customer := stack.createCustomer(t, "Amira")

	t.Run("assigns id and timestamp", func(t *testing.T) {
		entry, err := stack.ledger.Append(&models.LedgerEntry{
			CustomerID:  customer.ID,
			Amount:      50,
			Kind:        models.LedgerEntryKindEarned,
			Description: "signup bonus",
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, entry.ID)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := stack.ledger.Append(&models.LedgerEntry{
			CustomerID: customer.ID,
			Amount:     0,
			Kind:       models.LedgerEntryKindEarned,
		})
		require.Error(t, err)

		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.CodeValidation, appErr.Code)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := stack.ledger.Append(&models.LedgerEntry{
			CustomerID: customer.ID,
			Amount:     10,
			Kind:       models.LedgerEntryKind("BONUS"),
		})
		require.Error(t, err)
	})

	t.Run("write is immediately visible", func(t *testing.T) {
		before, err := stack.ledger.BalanceOf(customer.ID)
		require.NoError(t, err)

		_, err = stack.ledger.Append(&models.LedgerEntry{
			CustomerID: customer.ID,
			Amount:     25,
			Kind:       models.LedgerEntryKindEarned,
		})
		require.NoError(t, err)

		after, err := stack.ledger.BalanceOf(customer.ID)
		require.NoError(t, err)
		assert.Equal(t, before+25, after)
	})
}

func TestLedgerService_BalanceOf(t *testing.T) {
	stack := newTestStack(t)
	customer := stack.createCustomer(t, "Bilal")

	t.Run("empty ledger is zero", func(t *testing.T) {
		balance, err := stack.ledger.BalanceOf(customer.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("is the signed sum of all entries", func(t *testing.T) {
		amounts := []int64{100, -30, 45, -15}
		for _, amount := range amounts {
			kind := models.LedgerEntryKindEarned
			if amount < 0 {
				kind = models.LedgerEntryKindAdjusted
			}
			_, err := stack.ledger.Append(&models.LedgerEntry{
				CustomerID: customer.ID,
				Amount:     amount,
				Kind:       kind,
			})
			require.NoError(t, err)
		}

		balance, err := stack.ledger.BalanceOf(customer.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), balance)
	})

	t.Run("consecutive reads without writes are identical", func(t *testing.T) {
		first, err := stack.ledger.BalanceOf(customer.ID)
		require.NoError(t, err)

		second, err := stack.ledger.BalanceOf(customer.ID)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("does not leak across customers", func(t *testing.T) {
		other := stack.createCustomer(t, "Cem")

		balance, err := stack.ledger.BalanceOf(other.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})
}

func TestLedgerService_GetEntriesByCustomer(t *testing.T) {
	stack := newTestStack(t)
	customer := stack.createCustomer(t, "Dounia")

	for i := int64(1); i <= 25; i++ {
		_, err := stack.ledger.Append(&models.LedgerEntry{
			CustomerID: customer.ID,
			Amount:     i,
			Kind:       models.LedgerEntryKindEarned,
		})
		require.NoError(t, err)
	}

	t.Run("orders most recent first", func(t *testing.T) {
		page, err := stack.ledger.GetEntriesByCustomer(customer.ID, &models.PaginationRequest{Page: 1, Limit: 10})
		require.NoError(t, err)

		require.Len(t, page.Items, 10)
		for i := 1; i < len(page.Items); i++ {
			assert.False(t, page.Items[i].CreatedAt.After(page.Items[i-1].CreatedAt))
		}
	})

	t.Run("paginates with metadata", func(t *testing.T) {
		page, err := stack.ledger.GetEntriesByCustomer(customer.ID, &models.PaginationRequest{Page: 3, Limit: 10})
		require.NoError(t, err)

		assert.Len(t, page.Items, 5)
		assert.Equal(t, 25, page.TotalItems)
		assert.Equal(t, 3, page.TotalPages)
		assert.False(t, page.HasNext)
		assert.True(t, page.HasPrev)
	})

	t.Run("restartable from the first page", func(t *testing.T) {
		first, err := stack.ledger.GetEntriesByCustomer(customer.ID, &models.PaginationRequest{Page: 1, Limit: 5})
		require.NoError(t, err)

		again, err := stack.ledger.GetEntriesByCustomer(customer.ID, &models.PaginationRequest{Page: 1, Limit: 5})
		require.NoError(t, err)

		require.Len(t, again.Items, len(first.Items))
		for i := range first.Items {
			assert.Equal(t, first.Items[i].ID, again.Items[i].ID)
		}
	})
}
