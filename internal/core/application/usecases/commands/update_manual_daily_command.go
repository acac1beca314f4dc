package commands

import (
	"errors"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateManualDailyCommandIsNotConstructed = errors.New(
	"UpdateManualDailyCommand must be created via NewUpdateManualDailyCommand constructor",
)

// UpdateManualDailyCommand represents a request to correct the figures of a
// manual daily entry. Entries already folded into a settlement are frozen
// and refuse the update.
type UpdateManualDailyCommand struct { //nolint:recvcheck //using for validation
	dailyID           kernel.UUID
	ordersCount       int
	totalDeliveryFees decimal.Decimal
	amount            decimal.Decimal
	by                actor.Actor

	guard guard.ConstructorGuard
}

// NewUpdateManualDailyCommand creates a command to correct a manual daily entry.
func NewUpdateManualDailyCommand(
	dailyID kernel.UUID,
	ordersCount int,
	totalDeliveryFees decimal.Decimal,
	amount decimal.Decimal,
	by actor.Actor,
) (UpdateManualDailyCommand, error) {
	if err := errors.Join(
		dailyID.Validate(),
		by.Validate(),
	); err != nil {
		return UpdateManualDailyCommand{}, err
	}

	return UpdateManualDailyCommand{
		dailyID:           dailyID,
		ordersCount:       ordersCount,
		totalDeliveryFees: totalDeliveryFees,
		amount:            amount,
		by:                by,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateManualDailyCommand) Validate() error {
	return c.guard.Validate(ErrUpdateManualDailyCommandIsNotConstructed)
}

// DailyID returns the identifier of the entry being corrected.
func (c UpdateManualDailyCommand) DailyID() kernel.UUID {
	return c.dailyID
}

// OrdersCount returns the corrected delivery count.
func (c UpdateManualDailyCommand) OrdersCount() int {
	return c.ordersCount
}

// TotalDeliveryFees returns the corrected fee total.
func (c UpdateManualDailyCommand) TotalDeliveryFees() decimal.Decimal {
	return c.totalDeliveryFees
}

// Amount returns the corrected company share.
func (c UpdateManualDailyCommand) Amount() decimal.Decimal {
	return c.amount
}

// By returns the actor correcting the entry.
func (c UpdateManualDailyCommand) By() actor.Actor {
	return c.by
}
