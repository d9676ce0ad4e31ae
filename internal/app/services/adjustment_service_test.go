package services

import (
	stderrors "errors"
	"testing"

	"github.com/google/uuid"
	"github.com/qassab/loyalty-core/internal/app/errors"
	"github.com/qassab/loyalty-core/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustmentService_Adjust(t *testing.T) {
	stack := newTestStack(t)

	t.Run("positive delta records an EARNED entry", func(t *testing.T) {
		customer := stack.createCustomer(t, "Elif")

		entry, newBalance, err := stack.adjustments.Adjust(customer.ID.String(), 150, "campaign bonus", nil)
		require.NoError(t, err)

		assert.Equal(t, models.LedgerEntryKindEarned, entry.Kind)
		assert.Equal(t, int64(150), entry.Amount)
		assert.Equal(t, "campaign bonus", entry.Description)
		assert.Equal(t, int64(150), newBalance)
	})

	t.Run("negative delta records an ADJUSTED entry", func(t *testing.T) {
		customer := stack.createCustomer(t, "Farid")

		_, _, err := stack.adjustments.Adjust(customer.ID.String(), 100, "welcome", nil)
		require.NoError(t, err)

		entry, newBalance, err := stack.adjustments.Adjust(customer.ID.String(), -40, "support correction", nil)
		require.NoError(t, err)

		assert.Equal(t, models.LedgerEntryKindAdjusted, entry.Kind)
		assert.Equal(t, int64(-40), entry.Amount)
		assert.Equal(t, int64(60), newBalance)
	})

	t.Run("zero delta is rejected", func(t *testing.T) {
		customer := stack.createCustomer(t, "Gala")

		_, _, err := stack.adjustments.Adjust(customer.ID.String(), 0, "noop", nil)
		require.Error(t, err)

		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.CodeValidation, appErr.Code)
	})

	t.Run("deduction may push the balance negative", func(t *testing.T) {
		customer := stack.createCustomer(t, "Hana")

		_, _, err := stack.adjustments.Adjust(customer.ID.String(), 20, "earn", nil)
		require.NoError(t, err)

		_, newBalance, err := stack.adjustments.Adjust(customer.ID.String(), -50, "fraud clawback", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(-30), newBalance)

		balance, err := stack.ledger.BalanceOf(customer.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(-30), balance)
	})

	t.Run("unknown customer fails before any write", func(t *testing.T) {
		_, _, err := stack.adjustments.Adjust(uuid.NewString(), 10, "ghost", nil)
		require.Error(t, err)

		var appErr *errors.AppError
		require.True(t, stderrors.As(err, &appErr))
		assert.Equal(t, errors.CodeNotFound, appErr.Code)
	})

	t.Run("malformed customer id is a validation error", func(t *testing.T) {
		_, _, err := stack.adjustments.Adjust("not-a-uuid", 10, "bad id", nil)
		require.Error(t, err)

		var appErr *errors.AppError
		require.True(t, stderrors.As(err, &appErr))
		assert.Equal(t, errors.CodeValidation, appErr.Code)
	})

	t.Run("records the acting admin", func(t *testing.T) {
		customer := stack.createCustomer(t, "Idris")
		actor := uuid.New()

		entry, _, err := stack.adjustments.Adjust(customer.ID.String(), 75, "manual credit", &actor)
		require.NoError(t, err)

		require.NotNil(t, entry.ActorAdminID)
		assert.Equal(t, actor, *entry.ActorAdminID)
	})
}
