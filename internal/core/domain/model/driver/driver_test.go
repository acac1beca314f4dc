package driver_test

import (
	"testing"

	"fleetledger/internal/core/domain/model/driver"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommissionType(t *testing.T) {
	t.Run("validate", func(t *testing.T) {
		require.NoError(t, driver.CommissionPercentage.Validate())
		require.NoError(t, driver.CommissionFixed.Validate())
		require.Error(t, driver.CommissionUnknown.Validate())
		require.Error(t, driver.CommissionType(9).Validate())
	})

	t.Run("from_string", func(t *testing.T) {
		ct, err := driver.CommissionTypeFromString("percentage")
		require.NoError(t, err)
		assert.Equal(t, driver.CommissionPercentage, ct)

		ct, err = driver.CommissionTypeFromString("fixed")
		require.NoError(t, err)
		assert.Equal(t, driver.CommissionFixed, ct)

		_, err = driver.CommissionTypeFromString("tiered")
		require.Error(t, err)
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "percentage", driver.CommissionPercentage.String())
		assert.Equal(t, "fixed", driver.CommissionFixed.String())
		assert.Equal(t, "unknown", driver.CommissionUnknown.String())
	})
}

func TestNewDriver(t *testing.T) {
	t.Run("valid_percentage_driver", func(t *testing.T) {
		d, err := driver.NewDriver(
			kernel.NewUUID(), "Ahmed",
			driver.CommissionPercentage, decimal.NewFromInt(25), decimal.Zero,
		)

		require.NoError(t, err)
		assert.Equal(t, "Ahmed", d.Name())
		assert.Equal(t, driver.CommissionPercentage, d.CommissionType())
		require.NoError(t, d.Validate())
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		_, err := driver.NewDriver(
			kernel.NewUUID(), "",
			driver.CommissionFixed, decimal.NewFromInt(10), decimal.Zero,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("percentage_rate_above_100_rejected", func(t *testing.T) {
		_, err := driver.NewDriver(
			kernel.NewUUID(), "Ahmed",
			driver.CommissionPercentage, decimal.NewFromInt(101), decimal.Zero,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("negative_rate_rejected", func(t *testing.T) {
		_, err := driver.NewDriver(
			kernel.NewUUID(), "Ahmed",
			driver.CommissionFixed, decimal.NewFromInt(-1), decimal.Zero,
		)

		require.Error(t, err)
	})

	t.Run("fixed_rate_above_100_allowed", func(t *testing.T) {
		_, err := driver.NewDriver(
			kernel.NewUUID(), "Ahmed",
			driver.CommissionFixed, decimal.NewFromInt(500), decimal.Zero,
		)

		require.NoError(t, err)
	})

	t.Run("negative_opening_balance_allowed", func(t *testing.T) {
		d, err := driver.NewDriver(
			kernel.NewUUID(), "Ahmed",
			driver.CommissionFixed, decimal.NewFromInt(10), decimal.NewFromInt(-200),
		)

		require.NoError(t, err)
		assert.True(t, d.WalletOpeningBalance().Equal(decimal.NewFromInt(-200)))
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var d driver.Driver

		require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})
}

func TestDriver_CommissionFor(t *testing.T) {
	t.Run("percentage", func(t *testing.T) {
		d, err := driver.NewDriver(
			kernel.NewUUID(), "Ahmed",
			driver.CommissionPercentage, decimal.NewFromInt(25), decimal.Zero,
		)
		require.NoError(t, err)

		share := d.CommissionFor(2, decimal.NewFromInt(160))

		assert.True(t, share.Equal(decimal.NewFromInt(40)), share.String())
	})

	t.Run("fixed_ignores_fees", func(t *testing.T) {
		d, err := driver.NewDriver(
			kernel.NewUUID(), "Ahmed",
			driver.CommissionFixed, decimal.NewFromInt(10), decimal.Zero,
		)
		require.NoError(t, err)

		share := d.CommissionFor(3, decimal.NewFromInt(55))

		assert.True(t, share.Equal(decimal.NewFromInt(30)), share.String())
	})

	t.Run("zero_orders", func(t *testing.T) {
		d, err := driver.NewDriver(
			kernel.NewUUID(), "Ahmed",
			driver.CommissionFixed, decimal.NewFromInt(10), decimal.Zero,
		)
		require.NoError(t, err)

		assert.True(t, d.CommissionFor(0, decimal.Zero).IsZero())
	})
}
