package commands

import (
	"errors"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/guard"
)

var ErrUnassignDriverCommandIsNotConstructed = errors.New(
	"UnassignDriverCommand must be created via NewUnassignDriverCommand constructor",
)

// UnassignDriverCommand represents a request to take an in-transit order back
// from its driver. The order returns to Pending with its assignment and fee
// cleared.
type UnassignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	by      actor.Actor

	guard guard.ConstructorGuard
}

// NewUnassignDriverCommand creates a command to withdraw an order from its driver.
func NewUnassignDriverCommand(orderID kernel.UUID, by actor.Actor) (UnassignDriverCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		by.Validate(),
	); err != nil {
		return UnassignDriverCommand{}, err
	}

	return UnassignDriverCommand{
		orderID: orderID,
		by:      by,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignDriverCommand) Validate() error {
	return c.guard.Validate(ErrUnassignDriverCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being withdrawn.
func (c UnassignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// By returns the actor performing the withdrawal.
func (c UnassignDriverCommand) By() actor.Actor {
	return c.by
}
