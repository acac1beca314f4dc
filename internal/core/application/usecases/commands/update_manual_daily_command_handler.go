package commands

import (
	"context"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/pkg/errs"
)

// UpdateManualDailyCommandHandler handles corrections to manual daily entries.
type UpdateManualDailyCommandHandler struct {
	uowFactory ManualDailyUoWFactory
}

// NewUpdateManualDailyCommandHandler creates a handler for entry corrections.
func NewUpdateManualDailyCommandHandler(uowFactory ManualDailyUoWFactory) UpdateManualDailyCommandHandler {
	return UpdateManualDailyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the correction command. Requires ledger management
// permission. Settled entries refuse the update.
func (h UpdateManualDailyCommandHandler) Handle(ctx context.Context, cmd UpdateManualDailyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.By().Can(actor.PermManageLedger) {
		return errs.NewPermissionDeniedError("update manual daily")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dailyRepo := uow.ManualDailyRepository()

	aggregate, err := dailyRepo.Get(ctx, cmd.DailyID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(cmd.OrdersCount(), cmd.TotalDeliveryFees(), cmd.Amount()); err != nil {
		return err
	}

	if err = dailyRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
