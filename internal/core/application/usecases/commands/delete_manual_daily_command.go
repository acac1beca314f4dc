package commands

import (
	"errors"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/guard"
)

var ErrDeleteManualDailyCommandIsNotConstructed = errors.New(
	"DeleteManualDailyCommand must be created via NewDeleteManualDailyCommand constructor",
)

// DeleteManualDailyCommand represents a request to remove a manual daily
// entry. Settled entries are kept as history and cannot be removed.
type DeleteManualDailyCommand struct { //nolint:recvcheck //using for validation
	dailyID kernel.UUID
	by      actor.Actor

	guard guard.ConstructorGuard
}

// NewDeleteManualDailyCommand creates a command to remove a manual daily entry.
func NewDeleteManualDailyCommand(dailyID kernel.UUID, by actor.Actor) (DeleteManualDailyCommand, error) {
	if err := errors.Join(
		dailyID.Validate(),
		by.Validate(),
	); err != nil {
		return DeleteManualDailyCommand{}, err
	}

	return DeleteManualDailyCommand{
		dailyID: dailyID,
		by:      by,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteManualDailyCommand) Validate() error {
	return c.guard.Validate(ErrDeleteManualDailyCommandIsNotConstructed)
}

// DailyID returns the identifier of the entry being removed.
func (c DeleteManualDailyCommand) DailyID() kernel.UUID {
	return c.dailyID
}

// By returns the actor removing the entry.
func (c DeleteManualDailyCommand) By() actor.Actor {
	return c.by
}
