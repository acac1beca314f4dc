package commands

import (
	"context"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/pkg/errs"
)

// DeleteManualDailyCommandHandler handles removal of manual daily entries.
type DeleteManualDailyCommandHandler struct {
	uowFactory ManualDailyUoWFactory
}

// NewDeleteManualDailyCommandHandler creates a handler for entry removal.
func NewDeleteManualDailyCommandHandler(uowFactory ManualDailyUoWFactory) DeleteManualDailyCommandHandler {
	return DeleteManualDailyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command. Requires ledger management
// permission. The aggregate decides deletability, so an entry folded into
// a settlement stays put.
func (h DeleteManualDailyCommandHandler) Handle(ctx context.Context, cmd DeleteManualDailyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.By().Can(actor.PermManageLedger) {
		return errs.NewPermissionDeniedError("delete manual daily")
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

	if err = aggregate.CanDelete(); err != nil {
		return err
	}

	if err = dailyRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
