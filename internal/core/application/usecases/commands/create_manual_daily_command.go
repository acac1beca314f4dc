package commands

import (
	"errors"
	"time"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateManualDailyCommandIsNotConstructed = errors.New(
	"CreateManualDailyCommand must be created via NewCreateManualDailyCommand constructor",
)

// CreateManualDailyCommand represents a request to record a pre-computed
// daily summary for a driver, used for work tracked outside the per-order
// flow. The amount is the company share already agreed for that day.
type CreateManualDailyCommand struct { //nolint:recvcheck //using for validation
	dailyID           kernel.UUID
	driverID          kernel.UUID
	dayDate           time.Time
	ordersCount       int
	totalDeliveryFees decimal.Decimal
	amount            decimal.Decimal
	by                actor.Actor

	guard guard.ConstructorGuard
}

// NewCreateManualDailyCommand creates a command to record a manual daily entry.
// Figure-level rules (non-negative counts and amounts) are enforced by the
// aggregate on Handle.
func NewCreateManualDailyCommand(
	dailyID kernel.UUID,
	driverID kernel.UUID,
	dayDate time.Time,
	ordersCount int,
	totalDeliveryFees decimal.Decimal,
	amount decimal.Decimal,
	by actor.Actor,
) (CreateManualDailyCommand, error) {
	if err := errors.Join(
		dailyID.Validate(),
		driverID.Validate(),
		by.Validate(),
	); err != nil {
		return CreateManualDailyCommand{}, err
	}

	return CreateManualDailyCommand{
		dailyID:           dailyID,
		driverID:          driverID,
		dayDate:           dayDate,
		ordersCount:       ordersCount,
		totalDeliveryFees: totalDeliveryFees,
		amount:            amount,
		by:                by,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateManualDailyCommand) Validate() error {
	return c.guard.Validate(ErrCreateManualDailyCommandIsNotConstructed)
}

// DailyID returns the unique identifier for the entry.
func (c CreateManualDailyCommand) DailyID() kernel.UUID {
	return c.dailyID
}

// DriverID returns the identifier of the driver the entry belongs to.
func (c CreateManualDailyCommand) DriverID() kernel.UUID {
	return c.driverID
}

// DayDate returns the day the entry summarizes.
func (c CreateManualDailyCommand) DayDate() time.Time {
	return c.dayDate
}

// OrdersCount returns the number of deliveries covered by the entry.
func (c CreateManualDailyCommand) OrdersCount() int {
	return c.ordersCount
}

// TotalDeliveryFees returns the fees collected across the covered deliveries.
func (c CreateManualDailyCommand) TotalDeliveryFees() decimal.Decimal {
	return c.totalDeliveryFees
}

// Amount returns the pre-computed company share for the day.
func (c CreateManualDailyCommand) Amount() decimal.Decimal {
	return c.amount
}

// By returns the actor recording the entry.
func (c CreateManualDailyCommand) By() actor.Actor {
	return c.by
}
