package commands

import (
	"errors"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/order"
	"fleetledger/internal/core/ports"
	"fleetledger/internal/pkg/guard"
)

var ErrBulkChangeStatusCommandIsNotConstructed = errors.New(
	"BulkChangeStatusCommand must be created via NewBulkChangeStatusCommand constructor",
)

// BulkChangeStatusCommand represents a request to move every matching order
// to one target status. Orders whose type forbids the move are skipped and
// counted, never failing the batch.
type BulkChangeStatusCommand struct { //nolint:recvcheck //using for validation
	filter ports.OrderFilter
	target order.Status
	by     actor.Actor

	guard guard.ConstructorGuard
}

// NewBulkChangeStatusCommand creates a command to mass-change order statuses.
func NewBulkChangeStatusCommand(
	filter ports.OrderFilter,
	target order.Status,
	by actor.Actor,
) (BulkChangeStatusCommand, error) {
	if err := errors.Join(
		target.Validate(),
		by.Validate(),
	); err != nil {
		return BulkChangeStatusCommand{}, err
	}

	return BulkChangeStatusCommand{
		filter: filter,
		target: target,
		by:     by,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrBulkChangeStatusCommandIsNotConstructed)
}

// Filter returns the predicate selecting candidate orders.
func (c BulkChangeStatusCommand) Filter() ports.OrderFilter {
	return c.filter
}

// Target returns the status every matching order should move to.
func (c BulkChangeStatusCommand) Target() order.Status {
	return c.target
}

// By returns the actor performing the mass change.
func (c BulkChangeStatusCommand) By() actor.Actor {
	return c.by
}
