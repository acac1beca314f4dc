package commands_test

import (
	"testing"

	"fleetledger/internal/core/application/usecases/commands"
	"fleetledger/internal/core/domain/model/order"
	"fleetledger/internal/core/ports"
	"fleetledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBulkDeleteCommandHandler_Handle_PermissionDenied(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewBulkDeleteCommand(ports.OrderFilter{}, operator(t))
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)

	h := commands.NewBulkDeleteCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, 0, result.Affected)
	factory.AssertNotCalled(t, "Create")
}

func TestBulkDeleteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	first := pendingOrder(t)
	second := pendingOrder(t)
	cmd, err := commands.NewBulkDeleteCommand(
		ports.OrderFilter{Statuses: []order.Status{order.StatusPending}}, admin(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Times(3)
	uow.On("OrderRepository").Return(orderRepo).Times(3)
	uow.On("Commit", ctx).Return(nil).Times(3)
	uow.On("Rollback", ctx).Return(nil).Times(3)

	orderRepo.On("FindByFilter", mock.Anything, cmd.Filter()).
		Return([]*order.Order{first, second}, nil).Once()
	orderRepo.On("Delete", mock.Anything, first.ID()).Return(nil).Once()
	orderRepo.On("Delete", mock.Anything, second.ID()).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	h := commands.NewBulkDeleteCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Affected)
	assert.Equal(t, 0, result.Skipped)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
