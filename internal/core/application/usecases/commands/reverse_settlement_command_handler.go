package commands

import (
	"context"
	"errors"

	"fleetledger/internal/pkg/errs"
)

// ReverseSettlementCommandHandler orchestrates settlement reversal.
// Like settlement it locks the driver row and replays lost serialization
// races, so a reversal racing a new settlement resolves cleanly.
type ReverseSettlementCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewReverseSettlementCommandHandler creates a handler for reversal operations.
func NewReverseSettlementCommandHandler(uowFactory SettlementUoWFactory) ReverseSettlementCommandHandler {
	return ReverseSettlementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reversal command.
// Only admins may reverse. The orders and dailies the payment resolved get
// their reconciled flag cleared, then the payment record is deleted. Rows
// deleted since the settlement are skipped rather than blocking the reversal.
func (h ReverseSettlementCommandHandler) Handle(ctx context.Context, cmd ReverseSettlementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.By().IsAdmin() {
		return errs.NewPermissionDeniedError("reverse settlement")
	}

	var lastErr error
	for attempt := 0; attempt < settleRetryAttempts; attempt++ {
		err := h.reverseOnce(ctx, cmd)
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

func (h ReverseSettlementCommandHandler) reverseOnce(ctx context.Context, cmd ReverseSettlementCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()

	payment, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	// Lock the driver row so the reversal serializes with any concurrent
	// settlement of the same driver.
	if _, err = uow.DriverRepository().GetForUpdate(ctx, payment.Driver()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	if orderIDs := payment.OrderIDs(); len(orderIDs) > 0 {
		orders, err := orderRepo.FindByIDs(ctx, orderIDs)
		if err != nil {
			return err
		}
		for _, o := range orders {
			o.ClearReconciled()
			if err = orderRepo.Update(ctx, o); err != nil {
				return err
			}
		}
	}

	dailyRepo := uow.ManualDailyRepository()
	if dailyIDs := payment.ManualDailyIDs(); len(dailyIDs) > 0 {
		dailies, err := dailyRepo.FindByIDs(ctx, dailyIDs)
		if err != nil {
			return err
		}
		for _, m := range dailies {
			m.ClearReconciled()
			if err = dailyRepo.Update(ctx, m); err != nil {
				return err
			}
		}
	}

	if err = paymentRepo.Delete(ctx, payment.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
