package order_test

import (
	"testing"
	"time"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/order"
	"fleetledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func operator(t *testing.T) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(actor.RoleOperator, actor.PermManageOrders)
	require.NoError(t, err)
	return a
}

func admin(t *testing.T) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(actor.RoleAdmin, 0)
	require.NoError(t, err)
	return a
}

func newStandardOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), order.TypeStandard, kernel.NewUUID())
	require.NoError(t, err)
	return o
}

func newShoppingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), order.TypeShopping, kernel.NewUUID())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("standard_starts_pending", func(t *testing.T) {
		o := newStandardOrder(t)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.Driver())
		assert.Nil(t, o.DeliveryFee())
		assert.False(t, o.Reconciled())
		assert.Nil(t, o.DeliveredAt())
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("shopping_starts_waiting_merchant", func(t *testing.T) {
		o := newShoppingOrder(t)

		assert.Equal(t, order.StatusWaitingMerchant, o.Status())
	})

	t.Run("invalid_inputs", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, order.TypeStandard, kernel.NewUUID())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), order.TypeUnknown, kernel.NewUUID())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), order.TypeStandard, kernel.UUID{})
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	var notConstructed order.Order

	require.ErrorIs(t, notConstructed.Validate(), order.ErrOrderIsNotConstructed)
	require.NoError(t, newStandardOrder(t).Validate())
}

func TestOrder_AssignDriver(t *testing.T) {
	driverID := kernel.NewUUID()
	fee := decimal.NewFromInt(25)

	t.Run("pending_advances_to_in_transit", func(t *testing.T) {
		o := newStandardOrder(t)

		require.NoError(t, o.AssignDriver(driverID, fee, operator(t)))

		assert.Equal(t, order.StatusInTransit, o.Status())
		require.NotNil(t, o.Driver())
		assert.True(t, o.Driver().IsEqual(driverID))
		require.NotNil(t, o.DeliveryFee())
		assert.True(t, o.DeliveryFee().Equal(fee))
	})

	t.Run("ready_shopping_order_advances_to_in_transit", func(t *testing.T) {
		o := newShoppingOrder(t)
		op := operator(t)
		require.NoError(t, o.ChangeStatus(order.StatusReady, op))

		require.NoError(t, o.AssignDriver(driverID, fee, op))

		assert.Equal(t, order.StatusInTransit, o.Status())
	})

	t.Run("transfer_swaps_driver_without_leaving_in_transit", func(t *testing.T) {
		o := newStandardOrder(t)
		op := operator(t)
		require.NoError(t, o.AssignDriver(driverID, fee, op))

		otherDriver := kernel.NewUUID()
		otherFee := decimal.NewFromInt(30)
		require.NoError(t, o.AssignDriver(otherDriver, otherFee, op))

		assert.Equal(t, order.StatusInTransit, o.Status())
		assert.True(t, o.Driver().IsEqual(otherDriver))
		assert.True(t, o.DeliveryFee().Equal(otherFee))
	})

	t.Run("negative_fee_rejected", func(t *testing.T) {
		o := newStandardOrder(t)

		err := o.AssignDriver(driverID, decimal.NewFromInt(-1), operator(t))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_fee_requires_admin", func(t *testing.T) {
		o := newStandardOrder(t)

		err := o.AssignDriver(driverID, decimal.Zero, operator(t))
		require.ErrorIs(t, err, errs.ErrPermissionDenied)
		assert.Equal(t, order.StatusPending, o.Status())

		require.NoError(t, o.AssignDriver(driverID, decimal.Zero, admin(t)))
		assert.Equal(t, order.StatusInTransit, o.Status())
	})

	t.Run("assignment_needs_manage_orders_permission", func(t *testing.T) {
		o := newStandardOrder(t)
		noPerms, err := actor.NewActor(actor.RoleOperator, 0)
		require.NoError(t, err)

		err = o.AssignDriver(driverID, fee, noPerms)

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("delivered_order_cannot_be_assigned", func(t *testing.T) {
		o := newStandardOrder(t)
		op := operator(t)
		require.NoError(t, o.AssignDriver(driverID, fee, op))
		require.NoError(t, o.ChangeStatus(order.StatusDelivered, op))

		err := o.AssignDriver(kernel.NewUUID(), fee, op)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("waiting_merchant_shopping_order_cannot_be_assigned", func(t *testing.T) {
		o := newShoppingOrder(t)

		err := o.AssignDriver(driverID, fee, operator(t))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_UnassignDriver(t *testing.T) {
	t.Run("in_transit_reverts_to_pending", func(t *testing.T) {
		o := newStandardOrder(t)
		op := operator(t)
		require.NoError(t, o.AssignDriver(kernel.NewUUID(), decimal.NewFromInt(10), op))

		require.NoError(t, o.UnassignDriver(op))

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.Driver())
		assert.Nil(t, o.DeliveryFee())
	})

	t.Run("only_in_transit_orders_can_be_unassigned", func(t *testing.T) {
		o := newStandardOrder(t)

		err := o.UnassignDriver(operator(t))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("forbidden_pending_to_delivered_standard", func(t *testing.T) {
		o := newStandardOrder(t)

		err := o.ChangeStatus(order.StatusDelivered, operator(t))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("forbidden_pending_to_delivered_shopping", func(t *testing.T) {
		o := newShoppingOrder(t)
		op := operator(t)
		require.NoError(t, o.ChangeStatus(order.StatusPending, op))

		err := o.ChangeStatus(order.StatusDelivered, op)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("delivery_stamps_delivered_at", func(t *testing.T) {
		o := newStandardOrder(t)
		op := operator(t)
		require.NoError(t, o.AssignDriver(kernel.NewUUID(), decimal.NewFromInt(10), op))

		before := time.Now().UTC()
		require.NoError(t, o.ChangeStatus(order.StatusDelivered, op))

		require.NotNil(t, o.DeliveredAt())
		assert.False(t, o.DeliveredAt().Before(before))
		assert.False(t, o.IsActive())
	})

	t.Run("in_transit_requires_assigned_driver", func(t *testing.T) {
		o := newStandardOrder(t)

		err := o.ChangeStatus(order.StatusInTransit, operator(t))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("in_transit_to_pending_clears_assignment", func(t *testing.T) {
		o := newStandardOrder(t)
		op := operator(t)
		require.NoError(t, o.AssignDriver(kernel.NewUUID(), decimal.NewFromInt(10), op))

		require.NoError(t, o.ChangeStatus(order.StatusPending, op))

		assert.Nil(t, o.Driver())
		assert.Nil(t, o.DeliveryFee())
	})

	t.Run("shopping_walk_through_lifecycle", func(t *testing.T) {
		o := newShoppingOrder(t)
		op := operator(t)

		require.NoError(t, o.ChangeStatus(order.StatusPreparing, op))
		require.NoError(t, o.ChangeStatus(order.StatusReady, op))
		// Backward move is allowed for shopping orders.
		require.NoError(t, o.ChangeStatus(order.StatusPreparing, op))
		require.NoError(t, o.ChangeStatus(order.StatusReady, op))
		require.NoError(t, o.AssignDriver(kernel.NewUUID(), decimal.NewFromInt(15), op))
		require.NoError(t, o.ChangeStatus(order.StatusDelivered, op))

		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("terminal_states_reject_all_moves", func(t *testing.T) {
		o := newStandardOrder(t)
		op := operator(t)
		require.NoError(t, o.ChangeStatus(order.StatusCancelled, op))

		err := o.ChangeStatus(order.StatusPending, op)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("permission_required", func(t *testing.T) {
		o := newStandardOrder(t)
		noPerms, err := actor.NewActor(actor.RoleOperator, actor.PermManageLedger)
		require.NoError(t, err)

		err = o.ChangeStatus(order.StatusCancelled, noPerms)

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})
}

func TestOrder_Reconciliation(t *testing.T) {
	t.Run("only_delivered_orders_can_be_reconciled", func(t *testing.T) {
		o := newStandardOrder(t)

		err := o.MarkReconciled()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.False(t, o.Reconciled())
	})

	t.Run("reconcile_and_clear", func(t *testing.T) {
		o := newStandardOrder(t)
		op := operator(t)
		require.NoError(t, o.AssignDriver(kernel.NewUUID(), decimal.NewFromInt(10), op))
		require.NoError(t, o.ChangeStatus(order.StatusDelivered, op))

		require.NoError(t, o.MarkReconciled())
		assert.True(t, o.Reconciled())

		// Idempotent.
		require.NoError(t, o.MarkReconciled())

		o.ClearReconciled()
		assert.False(t, o.Reconciled())
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	merchantID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	fee := decimal.NewFromInt(25)
	createdAt := time.Now().UTC().Add(-time.Hour)
	deliveredAt := time.Now().UTC()

	t.Run("restores_complete_state", func(t *testing.T) {
		o, err := order.RestoreOrder(
			id, order.TypeStandard, merchantID,
			order.StatusDelivered, &driverID, &fee,
			true, createdAt, &deliveredAt,
		)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.True(t, o.Reconciled())
		require.NoError(t, o.Validate())
	})

	t.Run("reconciled_requires_delivered", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, order.TypeStandard, merchantID,
			order.StatusPending, nil, nil,
			true, createdAt, nil,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("in_transit_requires_driver", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, order.TypeStandard, merchantID,
			order.StatusInTransit, nil, &fee,
			false, createdAt, nil,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative_fee_rejected", func(t *testing.T) {
		bad := decimal.NewFromInt(-5)
		_, err := order.RestoreOrder(
			id, order.TypeStandard, merchantID,
			order.StatusInTransit, &driverID, &bad,
			false, createdAt, nil,
		)

		require.Error(t, err)
	})
}
