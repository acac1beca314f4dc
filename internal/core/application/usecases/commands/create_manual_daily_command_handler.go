package commands

import (
	"context"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/ledger"
	"fleetledger/internal/pkg/errs"
)

// CreateManualDailyCommandHandler handles recording of manual daily entries.
// The referenced driver must exist, so dangling entries can never be created.
type CreateManualDailyCommandHandler struct {
	uowFactory ManualDailyUoWFactory
}

// NewCreateManualDailyCommandHandler creates a handler for manual daily recording.
func NewCreateManualDailyCommandHandler(uowFactory ManualDailyUoWFactory) CreateManualDailyCommandHandler {
	return CreateManualDailyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recording command. Requires ledger management
// permission.
func (h CreateManualDailyCommandHandler) Handle(ctx context.Context, cmd CreateManualDailyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.By().Can(actor.PermManageLedger) {
		return errs.NewPermissionDeniedError("create manual daily")
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

	aggregate, err := ledger.NewManualDaily(
		cmd.DailyID(),
		cmd.DriverID(),
		cmd.DayDate(),
		cmd.OrdersCount(),
		cmd.TotalDeliveryFees(),
		cmd.Amount(),
	)
	if err != nil {
		return err
	}

	if err = uow.ManualDailyRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
