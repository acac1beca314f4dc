package commands

import (
	"errors"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/order"
	"fleetledger/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order along its
// lifecycle. The transition table for the order's type decides which moves
// are legal; moving to InTransit additionally requires an assigned driver.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	by      actor.Actor

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	by actor.Actor,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		target.Validate(),
		by.Validate(),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		target:  target,
		by:      by,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being moved.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the status the order should move to.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// By returns the actor performing the change.
func (c ChangeOrderStatusCommand) By() actor.Actor {
	return c.by
}
