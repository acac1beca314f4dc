package commands

import (
	"context"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/errs"
)

// BulkDeleteCommandHandler permanently removes orders matching a predicate.
type BulkDeleteCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewBulkDeleteCommandHandler creates a handler for mass deletion.
func NewBulkDeleteCommandHandler(uowFactory OrderUoWFactory) BulkDeleteCommandHandler {
	return BulkDeleteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mass delete command.
// Requires order deletion permission. Each order is removed in its own
// transaction; an order that vanished since the read counts as skipped.
func (h BulkDeleteCommandHandler) Handle(ctx context.Context, cmd BulkDeleteCommand) (BulkResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkResult{}, err
	}

	if !cmd.By().Can(actor.PermDeleteOrders) {
		return BulkResult{}, errs.NewPermissionDeniedError("delete orders")
	}

	candidates, err := h.candidates(ctx, cmd)
	if err != nil {
		return BulkResult{}, err
	}

	var result BulkResult
	for _, id := range candidates {
		if err := h.deleteOne(ctx, id); err != nil {
			result.Skipped++
			continue
		}
		result.Affected++
	}

	return result, nil
}

func (h BulkDeleteCommandHandler) candidates(ctx context.Context, cmd BulkDeleteCommand) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().FindByFilter(ctx, cmd.Filter())
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}

func (h BulkDeleteCommandHandler) deleteOne(ctx context.Context, id kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
