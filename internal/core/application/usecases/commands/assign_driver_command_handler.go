package commands

import (
	"context"
)

// AssignDriverCommandHandler orchestrates driver assignment and transfer.
// Verifies the driver exists before mutating the order, so an assignment can
// never reference a dangling driver id.
type AssignDriverCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for assignment operations.
// Requires an AssignmentUoWFactory for coordinating order and driver reads in
// one transaction.
func NewAssignDriverCommandHandler(uowFactory AssignmentUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// On an awaiting order this moves it to InTransit with the driver and fee
// recorded; on an in-transit order it swaps the driver while keeping the fee
// given here. All domain rules surface as errs classifications.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	if _, err := uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignDriver(cmd.DriverID(), cmd.Fee(), cmd.By()); err != nil {
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
