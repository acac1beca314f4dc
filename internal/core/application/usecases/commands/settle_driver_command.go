package commands

import (
	"errors"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/guard"
)

var ErrSettleDriverCommandIsNotConstructed = errors.New(
	"SettleDriverCommand must be created via NewSettleDriverCommand constructor",
)

// SettleDriverCommand represents a request to settle a driver's outstanding
// debt. Settlement folds every unreconciled delivered order and manual daily
// entry into a single payment record and freezes them.
//
// Example:
//
//	cmd, err := NewSettleDriverCommand(kernel.NewUUID(), driverID, ledgerClerk)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    switch {
//	    case errors.Is(err, errs.ErrActiveOrdersPresent):
//	        // driver still has deliveries in flight
//	    case errors.Is(err, errs.ErrNothingToSettle):
//	        // no unreconciled items
//	    }
//	}
type SettleDriverCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	driverID  kernel.UUID
	by        actor.Actor

	guard guard.ConstructorGuard
}

// NewSettleDriverCommand creates a command to settle a driver's debt.
// The payment id is supplied by the caller so retried requests stay idempotent
// at the persistence layer.
func NewSettleDriverCommand(
	paymentID kernel.UUID,
	driverID kernel.UUID,
	by actor.Actor,
) (SettleDriverCommand, error) {
	if err := errors.Join(
		paymentID.Validate(),
		driverID.Validate(),
		by.Validate(),
	); err != nil {
		return SettleDriverCommand{}, err
	}

	return SettleDriverCommand{
		paymentID: paymentID,
		driverID:  driverID,
		by:        by,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleDriverCommand) Validate() error {
	return c.guard.Validate(ErrSettleDriverCommandIsNotConstructed)
}

// PaymentID returns the identifier the settlement record will be stored under.
func (c SettleDriverCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// DriverID returns the identifier of the driver being settled.
func (c SettleDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// By returns the actor performing the settlement.
func (c SettleDriverCommand) By() actor.Actor {
	return c.by
}
