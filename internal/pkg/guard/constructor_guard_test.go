package guard_test

import (
	"errors"
	"testing"

	"fleetledger/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// by a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type fee struct {
		amount int
		guard  guard.ConstructorGuard
	}

	errFeeNotConstructed := errors.New("fee must be created via newFee")

	newFee := func(amount int) (fee, error) {
		if amount < 0 {
			return fee{}, errors.New("amount cannot be negative")
		}
		return fee{amount: amount, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		f, err := newFee(100)

		require.NoError(t, err)
		require.NoError(t, f.guard.Validate(errFeeNotConstructed))
		assert.Equal(t, 100, f.amount)
	})

	t.Run("zero_value_construction_fails_validation", func(t *testing.T) {
		var f fee // zero value

		err := f.guard.Validate(errFeeNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errFeeNotConstructed, err)
	})
}

func TestConstructorGuard_PassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	gCopy := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, gCopy.Validate(testError))
}
