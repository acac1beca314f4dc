package commands

import (
	"errors"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/ports"
	"fleetledger/internal/pkg/guard"
)

var ErrBulkDeleteCommandIsNotConstructed = errors.New(
	"BulkDeleteCommand must be created via NewBulkDeleteCommand constructor",
)

// BulkDeleteCommand represents a request to permanently remove every order
// matching a predicate. Deletion is administrative and bypasses the state
// machine; payment records keep their frozen amounts and history views
// recompute their breakdowns from whatever orders remain.
type BulkDeleteCommand struct { //nolint:recvcheck //using for validation
	filter ports.OrderFilter
	by     actor.Actor

	guard guard.ConstructorGuard
}

// NewBulkDeleteCommand creates a command to mass-delete orders.
func NewBulkDeleteCommand(filter ports.OrderFilter, by actor.Actor) (BulkDeleteCommand, error) {
	if err := by.Validate(); err != nil {
		return BulkDeleteCommand{}, err
	}

	return BulkDeleteCommand{
		filter: filter,
		by:     by,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkDeleteCommand) Validate() error {
	return c.guard.Validate(ErrBulkDeleteCommandIsNotConstructed)
}

// Filter returns the predicate selecting orders to remove.
func (c BulkDeleteCommand) Filter() ports.OrderFilter {
	return c.filter
}

// By returns the actor performing the mass delete.
func (c BulkDeleteCommand) By() actor.Actor {
	return c.by
}
