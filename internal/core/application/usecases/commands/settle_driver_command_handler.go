package commands

import (
	"context"
	"errors"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/ledger"
	"fleetledger/internal/core/domain/services"
	"fleetledger/internal/pkg/errs"
)

// settleRetryAttempts bounds how many times a settlement is replayed after
// losing a serialization race before giving up.
const settleRetryAttempts = 3

// SettleDriverCommandHandler orchestrates driver settlement.
// The driver row is locked for the duration of the transaction, so two
// settlements of the same driver serialize rather than double-charge. Lost
// races are replayed on a fresh transaction a bounded number of times.
type SettleDriverCommandHandler struct {
	uowFactory SettlementUoWFactory
	calculator services.LedgerCalculator
}

// NewSettleDriverCommandHandler creates a handler for settlement operations.
func NewSettleDriverCommandHandler(uowFactory SettlementUoWFactory) SettleDriverCommandHandler {
	return SettleDriverCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewLedgerCalculator(),
	}
}

// Handle processes the settlement command.
// Requires ledger management permission. A driver with orders still in
// flight cannot be settled; a driver with nothing unreconciled fails with
// errs.ErrNothingToSettle. On success a payment record holding the company
// share is written and every folded item is marked reconciled.
func (h SettleDriverCommandHandler) Handle(ctx context.Context, cmd SettleDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.By().Can(actor.PermManageLedger) {
		return errs.NewPermissionDeniedError("settle driver")
	}

	var lastErr error
	for attempt := 0; attempt < settleRetryAttempts; attempt++ {
		err := h.settleOnce(ctx, cmd)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errs.ErrConflict) {
			return err
		}
		lastErr = err
	}

	return errs.NewConflictRetryExhaustedError(settleRetryAttempts, lastErr)
}

func (h SettleDriverCommandHandler) settleOnce(ctx context.Context, cmd SettleDriverCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	orderRepo := uow.OrderRepository()
	dailyRepo := uow.ManualDailyRepository()

	aggregate, err := driverRepo.GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	activeCount, err := orderRepo.CountActiveByDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if activeCount > 0 {
		return errs.NewActiveOrdersPresentError(cmd.DriverID().String(), activeCount)
	}

	orders, err := orderRepo.FindUnreconciledDelivered(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	dailies, err := dailyRepo.FindUnreconciled(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	summary, err := h.calculator.Outstanding(aggregate, orders, dailies)
	if err != nil {
		return err
	}
	if summary.IsEmpty() {
		return errs.NewNothingToSettleError(cmd.DriverID().String())
	}

	payment, err := ledger.NewPayment(
		cmd.PaymentID(),
		cmd.DriverID(),
		summary.CompanyShare,
		summary.OrderIDs(),
		summary.DailyIDs(),
	)
	if err != nil {
		return err
	}

	for _, o := range summary.Orders {
		if err = o.MarkReconciled(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	for _, m := range summary.Dailies {
		m.MarkReconciled()
		if err = dailyRepo.Update(ctx, m); err != nil {
			return err
		}
	}

	if err = uow.PaymentRepository().Add(ctx, payment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
