package commands

import (
	"errors"

	"fleetledger/internal/core/domain/model/driver"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/errs"
	"fleetledger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a new driver with a
// commission scheme and an opening wallet balance carried over from before
// the system was introduced.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID             kernel.UUID
	name                 string
	commissionType       driver.CommissionType
	commissionRate       decimal.Decimal
	walletOpeningBalance decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// The commission rate rules are enforced by the driver aggregate on Handle;
// here only presence-level validation happens.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	name string,
	commissionType driver.CommissionType,
	commissionRate decimal.Decimal,
	walletOpeningBalance decimal.Decimal,
) (CreateDriverCommand, error) {
	driverCommand := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driverCommand.setDriverID(driverID),
		driverCommand.setName(name),
		driverCommand.setCommission(commissionType, commissionRate),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	driverCommand.walletOpeningBalance = walletOpeningBalance

	return driverCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// CommissionType returns the driver's commission scheme.
func (c CreateDriverCommand) CommissionType() driver.CommissionType {
	return c.commissionType
}

// CommissionRate returns the rate applied under the commission scheme.
func (c CreateDriverCommand) CommissionRate() decimal.Decimal {
	return c.commissionRate
}

// WalletOpeningBalance returns the carried-over balance, which may be negative.
func (c CreateDriverCommand) WalletOpeningBalance() decimal.Decimal {
	return c.walletOpeningBalance
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setCommission(commissionType driver.CommissionType, rate decimal.Decimal) error {
	if err := commissionType.Validate(); err != nil {
		return err
	}

	c.commissionType = commissionType
	c.commissionRate = rate
	return nil
}
