package commands

import (
	"errors"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/guard"
)

var ErrReverseSettlementCommandIsNotConstructed = errors.New(
	"ReverseSettlementCommand must be created via NewReverseSettlementCommand constructor",
)

// ReverseSettlementCommand represents a request to undo a settlement.
// Every item the payment resolved becomes outstanding again and the payment
// record is removed. Reversal is an admin-only correction tool.
type ReverseSettlementCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	by        actor.Actor

	guard guard.ConstructorGuard
}

// NewReverseSettlementCommand creates a command to undo a settlement.
func NewReverseSettlementCommand(paymentID kernel.UUID, by actor.Actor) (ReverseSettlementCommand, error) {
	if err := errors.Join(
		paymentID.Validate(),
		by.Validate(),
	); err != nil {
		return ReverseSettlementCommand{}, err
	}

	return ReverseSettlementCommand{
		paymentID: paymentID,
		by:        by,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReverseSettlementCommand) Validate() error {
	return c.guard.Validate(ErrReverseSettlementCommandIsNotConstructed)
}

// PaymentID returns the identifier of the settlement being undone.
func (c ReverseSettlementCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// By returns the actor performing the reversal.
func (c ReverseSettlementCommand) By() actor.Actor {
	return c.by
}
