package commands

import (
	"errors"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/ports"
	"fleetledger/internal/pkg/errs"
	"fleetledger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrBulkAssignCommandIsNotConstructed = errors.New(
	"BulkAssignCommand must be created via NewBulkAssignCommand constructor",
)

// BulkAssignCommand represents a request to hand every matching awaiting,
// unassigned order to one driver for the same delivery fee.
type BulkAssignCommand struct { //nolint:recvcheck //using for validation
	filter   ports.OrderFilter
	driverID kernel.UUID
	fee      decimal.Decimal
	by       actor.Actor

	guard guard.ConstructorGuard
}

// NewBulkAssignCommand creates a command to mass-assign orders to a driver.
// A negative fee is rejected outright; the zero-fee admin rule is checked by
// the handler before any order is touched.
func NewBulkAssignCommand(
	filter ports.OrderFilter,
	driverID kernel.UUID,
	fee decimal.Decimal,
	by actor.Actor,
) (BulkAssignCommand, error) {
	if err := errors.Join(
		driverID.Validate(),
		by.Validate(),
	); err != nil {
		return BulkAssignCommand{}, err
	}
	if fee.IsNegative() {
		return BulkAssignCommand{}, errs.NewValueIsInvalidError("fee")
	}

	return BulkAssignCommand{
		filter:   filter,
		driverID: driverID,
		fee:      fee,
		by:       by,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkAssignCommand) Validate() error {
	return c.guard.Validate(ErrBulkAssignCommandIsNotConstructed)
}

// Filter returns the predicate selecting candidate orders.
func (c BulkAssignCommand) Filter() ports.OrderFilter {
	return c.filter
}

// DriverID returns the identifier of the driver taking the orders.
func (c BulkAssignCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Fee returns the delivery fee applied to every assigned order.
func (c BulkAssignCommand) Fee() decimal.Decimal {
	return c.fee
}

// By returns the actor performing the mass assignment.
func (c BulkAssignCommand) By() actor.Actor {
	return c.by
}
