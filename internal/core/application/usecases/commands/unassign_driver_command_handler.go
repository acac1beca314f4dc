package commands

import (
	"context"
)

// UnassignDriverCommandHandler handles withdrawing an order from its driver.
type UnassignDriverCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUnassignDriverCommandHandler creates a handler for withdrawal operations.
func NewUnassignDriverCommandHandler(uowFactory OrderUoWFactory) UnassignDriverCommandHandler {
	return UnassignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal command. Only in-transit orders can be
// withdrawn; anything else fails with an invalid transition classification.
func (h UnassignDriverCommandHandler) Handle(ctx context.Context, cmd UnassignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.UnassignDriver(cmd.By()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
