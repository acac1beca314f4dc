package commands

import (
	"errors"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to hand an order to a driver for
// the given delivery fee. Assignment is the coupled mutation that moves an
// awaiting order into InTransit; on an order already in transit it transfers
// the delivery to another driver instead.
//
// Example:
//
//	cmd, err := NewAssignDriverCommand(orderID, driverID, decimal.NewFromInt(50), operator)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    switch {
//	    case errors.Is(err, errs.ErrInvalidTransition):
//	        // order is not in a status that accepts a driver
//	    case errors.Is(err, errs.ErrPermissionDenied):
//	        // zero fee requires an admin
//	    }
//	}
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	fee      decimal.Decimal
	by       actor.Actor

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to an order.
// Fee sign and permission rules are enforced by the order aggregate.
func NewAssignDriverCommand(
	orderID kernel.UUID,
	driverID kernel.UUID,
	fee decimal.Decimal,
	by actor.Actor,
) (AssignDriverCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		driverID.Validate(),
		by.Validate(),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		orderID:  orderID,
		driverID: driverID,
		fee:      fee,
		by:       by,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being assigned.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the driver taking the order.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Fee returns the delivery fee fixed at assignment time.
func (c AssignDriverCommand) Fee() decimal.Decimal {
	return c.fee
}

// By returns the actor performing the assignment.
func (c AssignDriverCommand) By() actor.Actor {
	return c.by
}
