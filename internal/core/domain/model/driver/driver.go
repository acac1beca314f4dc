package driver

import (
	"errors"
	"fmt"

	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/errs"
	"fleetledger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")
)

// CommissionType selects how the platform's share of a driver's collected fees
// is computed: as a percentage of the fees or as a fixed amount per order.
type CommissionType int

const (
	// CommissionUnknown represents an invalid or undefined commission type.
	CommissionUnknown CommissionType = iota

	// CommissionPercentage means commissionRate is a percentage (0–100)
	// applied to the total collected delivery fees.
	CommissionPercentage

	// CommissionFixed means commissionRate is a flat amount owed per order,
	// independent of the fee collected.
	CommissionFixed
)

func getCommissionTypeStrings() map[CommissionType]string {
	return map[CommissionType]string{
		CommissionUnknown:    "unknown",
		CommissionPercentage: "percentage",
		CommissionFixed:      "fixed",
	}
}

// CommissionTypeFromString parses a commission type from its string representation.
func CommissionTypeFromString(s string) (CommissionType, error) {
	switch s {
	case "percentage":
		return CommissionPercentage, nil
	case "fixed":
		return CommissionFixed, nil
	default:
		return CommissionUnknown, errs.NewValueIsInvalidErrorWithCause(
			"commissionType", fmt.Errorf("%q is not a valid commission type", s))
	}
}

// Validate checks if the CommissionType value is valid.
func (c CommissionType) Validate() error {
	if c != CommissionPercentage && c != CommissionFixed {
		return errs.NewValueIsInvalidErrorWithCause(
			"commissionType", fmt.Errorf("%d is not a valid commission type", c))
	}
	return nil
}

// String returns the lowercase name of the commission type.
func (c CommissionType) String() string {
	if s, ok := getCommissionTypeStrings()[c]; ok {
		return s
	}
	return "unknown"
}

// Driver is the aggregate root for a delivery driver, restricted to the state
// the settlement ledger needs: how commission is computed for them and the
// one-time opening-balance adjustment applied to their share.
//
// Business rules:
//   - A percentage commission rate must lie within 0–100
//   - A fixed commission rate must be non-negative
//   - The wallet opening balance may be negative (carried-over debt)
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// name is the human-readable name of the driver
	name string
	// commissionType selects percentage or fixed commission
	commissionType CommissionType
	// commissionRate is a percentage (0–100) or a fixed amount per order
	commissionRate decimal.Decimal
	// walletOpeningBalance is a manual carry-over added once to the driver share
	walletOpeningBalance decimal.Decimal
	// guard ensures the driver was created via a factory function
	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver with the specified commission configuration.
// Returns a validation error if the id is invalid, the name is empty, the
// commission type is unknown, or the rate is out of range for its type.
func NewDriver(
	id kernel.UUID,
	name string,
	commissionType CommissionType,
	commissionRate decimal.Decimal,
	walletOpeningBalance decimal.Decimal,
) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if err := commissionType.Validate(); err != nil {
		return nil, err
	}
	if err := validateRate(commissionType, commissionRate); err != nil {
		return nil, err
	}

	return &Driver{
		id:                   id,
		name:                 name,
		commissionType:       commissionType,
		commissionRate:       commissionRate,
		walletOpeningBalance: walletOpeningBalance,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// RestoreDriver reconstructs a Driver from persistence.
func RestoreDriver(
	id kernel.UUID,
	name string,
	commissionType CommissionType,
	commissionRate decimal.Decimal,
	walletOpeningBalance decimal.Decimal,
) (*Driver, error) {
	return NewDriver(id, name, commissionType, commissionRate, walletOpeningBalance)
}

func validateRate(commissionType CommissionType, rate decimal.Decimal) error {
	if rate.IsNegative() {
		return errs.NewValueIsInvalidError("commissionRate")
	}
	if commissionType == CommissionPercentage && rate.GreaterThan(decimal.NewFromInt(100)) {
		return errs.NewValueIsOutOfRangeError("commissionRate", rate.String(), 0, 100)
	}
	return nil
}

// Validate ensures the Driver instance was properly constructed through a factory.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// CommissionType returns how the driver's commission is computed.
func (d *Driver) CommissionType() CommissionType {
	return d.commissionType
}

// CommissionRate returns the percentage (0–100) or fixed per-order amount.
func (d *Driver) CommissionRate() decimal.Decimal {
	return d.commissionRate
}

// WalletOpeningBalance returns the one-time carry-over adjustment for the driver.
func (d *Driver) WalletOpeningBalance() decimal.Decimal {
	return d.walletOpeningBalance
}

// CommissionFor computes the platform's share for a set of individually
// tracked orders: ordersCount × rate for fixed commission, or
// totalFees × rate / 100 for percentage commission.
//
// The result is not clamped here; the settlement calculator applies the
// company-share clamp after manual daily amounts are merged in.
func (d *Driver) CommissionFor(ordersCount int, totalFees decimal.Decimal) decimal.Decimal {
	if d.commissionType == CommissionFixed {
		return d.commissionRate.Mul(decimal.NewFromInt(int64(ordersCount)))
	}
	return totalFees.Mul(d.commissionRate).Div(decimal.NewFromInt(100))
}
