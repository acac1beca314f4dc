package commands_test

import (
	"errors"
	"testing"

	"fleetledger/internal/core/application/usecases/commands"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/ledger"
	"fleetledger/internal/core/domain/model/order"

	"fleetledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettleDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := percentageDriver(t, 25)
	first := deliveredUnreconciledOrder(t, d.ID(), 100)
	second := deliveredUnreconciledOrder(t, d.ID(), 60)
	paymentID := kernel.NewUUID()

	cmd, err := commands.NewSettleDriverCommand(paymentID, d.ID(), ledgerClerk(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	dailyRepo := new(MockManualDailyRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ManualDailyRepository").Return(dailyRepo).Once()
	uow.On("PaymentRepository").Return(paymentRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	driverRepo.On("GetForUpdate", mock.Anything, d.ID()).Return(d, nil).Once()
	orderRepo.On("CountActiveByDriver", mock.Anything, d.ID()).Return(int64(0), nil).Once()
	orderRepo.On("FindUnreconciledDelivered", mock.Anything, d.ID()).
		Return([]*order.Order{first, second}, nil).Once()
	dailyRepo.On("FindUnreconciled", mock.Anything, d.ID()).
		Return([]*ledger.ManualDaily{}, nil).Once()
	orderRepo.On("Update", mock.Anything, first).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, second).Return(nil).Once()

	var recorded *ledger.Payment
	paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*ledger.Payment")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*ledger.Payment)
		}).
		Return(nil).Once()

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSettleDriverCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, recorded)
	assert.True(t, recorded.ID().IsEqual(paymentID))
	assert.True(t, recorded.Amount().Equal(decimal.NewFromInt(40)), recorded.Amount().String())
	assert.Len(t, recorded.OrderIDs(), 2)
	assert.Empty(t, recorded.ManualDailyIDs())
	assert.True(t, first.Reconciled())
	assert.True(t, second.Reconciled())

	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	dailyRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSettleDriverCommandHandler_Handle_PermissionDenied(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSettleDriverCommand(kernel.NewUUID(), kernel.NewUUID(), operator(t))
	require.NoError(t, err)

	factory := new(MockSettlementUoWFactory)

	h := commands.NewSettleDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestSettleDriverCommandHandler_Handle_ActiveOrdersPresent(t *testing.T) {
	ctx := t.Context()
	d := percentageDriver(t, 25)
	cmd, err := commands.NewSettleDriverCommand(kernel.NewUUID(), d.ID(), ledgerClerk(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ManualDailyRepository").Return(new(MockManualDailyRepository)).Once(),
		driverRepo.On("GetForUpdate", mock.Anything, d.ID()).Return(d, nil).Once(),
		orderRepo.On("CountActiveByDriver", mock.Anything, d.ID()).Return(int64(1), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSettleDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrActiveOrdersPresent)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSettleDriverCommandHandler_Handle_NothingToSettle(t *testing.T) {
	ctx := t.Context()
	d := percentageDriver(t, 25)
	cmd, err := commands.NewSettleDriverCommand(kernel.NewUUID(), d.ID(), ledgerClerk(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	dailyRepo := new(MockManualDailyRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ManualDailyRepository").Return(dailyRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	driverRepo.On("GetForUpdate", mock.Anything, d.ID()).Return(d, nil).Once()
	orderRepo.On("CountActiveByDriver", mock.Anything, d.ID()).Return(int64(0), nil).Once()
	orderRepo.On("FindUnreconciledDelivered", mock.Anything, d.ID()).Return([]*order.Order{}, nil).Once()
	dailyRepo.On("FindUnreconciled", mock.Anything, d.ID()).Return([]*ledger.ManualDaily{}, nil).Once()

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSettleDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNothingToSettle)
	uow.AssertExpectations(t)
}

func TestSettleDriverCommandHandler_Handle_ConflictRetryExhausted(t *testing.T) {
	ctx := t.Context()
	d := percentageDriver(t, 25)
	cmd, err := commands.NewSettleDriverCommand(kernel.NewUUID(), d.ID(), ledgerClerk(t))
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Times(3)
	uow.On("DriverRepository").Return(driverRepo).Times(3)
	uow.On("Rollback", ctx).Return(nil).Times(3)
	driverRepo.On("GetForUpdate", mock.Anything, d.ID()).
		Return(nil, errs.NewConflictError(errors.New("SQLSTATE 40001"))).Times(3)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	h := commands.NewSettleDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflictRetryExhausted)
	uow.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}
