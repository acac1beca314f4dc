package ledger_test

import (
	"testing"
	"time"

	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/ledger"
	"fleetledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	driverID := kernel.NewUUID()
	orderIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	dailyIDs := []kernel.UUID{kernel.NewUUID()}

	t.Run("valid_payment", func(t *testing.T) {
		p, err := ledger.NewPayment(
			kernel.NewUUID(), driverID, decimal.NewFromInt(40), orderIDs, dailyIDs)

		require.NoError(t, err)
		assert.True(t, p.Driver().IsEqual(driverID))
		assert.True(t, p.Amount().Equal(decimal.NewFromInt(40)))
		assert.Len(t, p.OrderIDs(), 2)
		assert.Len(t, p.ManualDailyIDs(), 1)
		assert.False(t, p.CreatedAt().IsZero())
		require.NoError(t, p.Validate())
	})

	t.Run("orders_only_payment", func(t *testing.T) {
		_, err := ledger.NewPayment(
			kernel.NewUUID(), driverID, decimal.NewFromInt(40), orderIDs, nil)

		require.NoError(t, err)
	})

	t.Run("empty_reference_sets_rejected", func(t *testing.T) {
		_, err := ledger.NewPayment(
			kernel.NewUUID(), driverID, decimal.NewFromInt(40), nil, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative_amount_rejected", func(t *testing.T) {
		_, err := ledger.NewPayment(
			kernel.NewUUID(), driverID, decimal.NewFromInt(-1), orderIDs, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid_referenced_id_rejected", func(t *testing.T) {
		_, err := ledger.NewPayment(
			kernel.NewUUID(), driverID, decimal.Zero, []kernel.UUID{{}}, nil)

		require.Error(t, err)
	})
}

func TestPayment_ReferenceSetsAreCopies(t *testing.T) {
	orderIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	p, err := ledger.NewPayment(
		kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(10), orderIDs, nil)
	require.NoError(t, err)

	got := p.OrderIDs()
	got[0] = kernel.NewUUID()

	assert.True(t, p.OrderIDs()[0].IsEqual(orderIDs[0]),
		"mutating the returned slice must not affect the payment")
}

func TestRestorePayment(t *testing.T) {
	createdAt := time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)
	p, err := ledger.RestorePayment(
		kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(40),
		[]kernel.UUID{kernel.NewUUID()}, nil, createdAt)

	require.NoError(t, err)
	assert.Equal(t, createdAt, p.CreatedAt())
}

func TestPayment_ZeroValueFailsValidation(t *testing.T) {
	var p ledger.Payment

	require.ErrorIs(t, p.Validate(), ledger.ErrPaymentIsNotConstructed)
}
