package commands_test

import (
	"testing"
	"time"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/driver"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func operator(t *testing.T) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(actor.RoleOperator, actor.PermManageOrders)
	require.NoError(t, err)
	return a
}

func ledgerClerk(t *testing.T) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(actor.RoleOperator, actor.PermManageOrders|actor.PermManageLedger)
	require.NoError(t, err)
	return a
}

func admin(t *testing.T) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(actor.RoleAdmin, 0)
	require.NoError(t, err)
	return a
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), order.TypeStandard, kernel.NewUUID())
	require.NoError(t, err)
	return o
}

func inTransitOrder(t *testing.T, driverID kernel.UUID) *order.Order {
	t.Helper()
	o := pendingOrder(t)
	require.NoError(t, o.AssignDriver(driverID, decimal.NewFromInt(50), operator(t)))
	return o
}

func deliveredUnreconciledOrder(t *testing.T, driverID kernel.UUID, fee int64) *order.Order {
	t.Helper()
	f := decimal.NewFromInt(fee)
	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), order.TypeStandard, kernel.NewUUID(),
		order.StatusDelivered, &driverID, &f,
		false, now.Add(-time.Hour), &now,
	)
	require.NoError(t, err)
	return o
}

func percentageDriver(t *testing.T, rate int64) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(
		kernel.NewUUID(), "Ahmed",
		driver.CommissionPercentage, decimal.NewFromInt(rate), decimal.Zero)
	require.NoError(t, err)
	return d
}
