package commands

import (
	"context"

	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/order"
	"fleetledger/internal/pkg/errs"
)

// BulkAssignCommandHandler applies one driver and fee across a set of orders.
// The candidate set is resolved in one read, then every order is mutated in
// its own transaction so one order's conflict never rolls back the rest.
type BulkAssignCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewBulkAssignCommandHandler creates a handler for mass assignment.
func NewBulkAssignCommandHandler(uowFactory AssignmentUoWFactory) BulkAssignCommandHandler {
	return BulkAssignCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mass assignment command.
// A zero fee from a non-admin rejects the whole call before any order is
// touched. Orders that stopped being assignable between the read and their
// own transaction are counted as skipped.
func (h BulkAssignCommandHandler) Handle(ctx context.Context, cmd BulkAssignCommand) (BulkResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkResult{}, err
	}

	if cmd.Fee().IsZero() && !cmd.By().IsAdmin() {
		return BulkResult{}, errs.NewPermissionDeniedError("assign zero delivery fee")
	}

	candidates, err := h.candidates(ctx, cmd)
	if err != nil {
		return BulkResult{}, err
	}

	var result BulkResult
	for _, id := range candidates {
		if err := h.assignOne(ctx, id, cmd); err != nil {
			result.Skipped++
			continue
		}
		result.Affected++
	}

	return result, nil
}

// candidates resolves the ids of awaiting, unassigned orders matching the
// filter, verifying the target driver exists in the same transaction.
func (h BulkAssignCommandHandler) candidates(ctx context.Context, cmd BulkAssignCommand) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return nil, err
	}

	// Mass assignment only ever targets awaiting, unassigned orders. The
	// caller's filter can narrow that set but never widen it, so a filter
	// whose statuses exclude awaiting yields no candidates at all.
	filter := cmd.Filter()
	if len(filter.Statuses) > 0 && !includesStatus(filter.Statuses, order.StatusPending) {
		if err := uow.Commit(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}
	filter.Statuses = []order.Status{order.StatusPending}
	unassigned := true
	filter.Unassigned = &unassigned

	orders, err := uow.OrderRepository().FindByFilter(ctx, filter)
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

func includesStatus(statuses []order.Status, target order.Status) bool {
	for _, s := range statuses {
		if s == target {
			return true
		}
	}
	return false
}

func (h BulkAssignCommandHandler) assignOne(ctx context.Context, id kernel.UUID, cmd BulkAssignCommand) error {
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

	if err = aggregate.AssignDriver(cmd.DriverID(), cmd.Fee(), cmd.By()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
