package commands

import (
	"context"

	"fleetledger/internal/core/domain/model/kernel"
)

// BulkChangeStatusCommandHandler applies one lifecycle move across a set of
// orders, one transaction per order.
type BulkChangeStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewBulkChangeStatusCommandHandler creates a handler for mass status changes.
func NewBulkChangeStatusCommandHandler(uowFactory OrderUoWFactory) BulkChangeStatusCommandHandler {
	return BulkChangeStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mass status change command.
// Every matched order goes through the same transition check as the
// single-order path; an illegal move counts as a skip and the batch continues.
func (h BulkChangeStatusCommandHandler) Handle(ctx context.Context, cmd BulkChangeStatusCommand) (BulkResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkResult{}, err
	}

	candidates, err := h.candidates(ctx, cmd)
	if err != nil {
		return BulkResult{}, err
	}

	var result BulkResult
	for _, id := range candidates {
		if err := h.changeOne(ctx, id, cmd); err != nil {
			result.Skipped++
			continue
		}
		result.Affected++
	}

	return result, nil
}

func (h BulkChangeStatusCommandHandler) candidates(ctx context.Context, cmd BulkChangeStatusCommand) ([]kernel.UUID, error) {
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

func (h BulkChangeStatusCommandHandler) changeOne(ctx context.Context, id kernel.UUID, cmd BulkChangeStatusCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Target(), cmd.By()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
