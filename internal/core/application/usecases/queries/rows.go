// Package queries contains read-side operations in the CQRS architecture.
// Query handlers run raw SQL against the store, restore domain values from
// the rows and delegate any ledger arithmetic to the domain calculator, so
// the read path can never drift from the settlement math.
package queries

import (
	"context"
	"database/sql"
	"time"

	"fleetledger/internal/core/domain/model/driver"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/ledger"
	"fleetledger/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	selectOrderColumns = `
		id,
		order_type,
		merchant_id,
		status,
		driver_id,
		delivery_fee,
		reconciled,
		created_at,
		delivered_at
	`
	selectDailyColumns = `
		id,
		driver_id,
		day_date,
		orders_count,
		total_delivery_fees,
		amount,
		reconciled
	`
)

func scanOrderRows(rows *sql.Rows) ([]*order.Order, error) {
	orders := make([]*order.Order, 0)

	for rows.Next() {
		var (
			id          uuid.UUID
			orderType   int
			merchantID  uuid.UUID
			status      int
			driverID    *uuid.UUID
			deliveryFee *decimal.Decimal
			reconciled  bool
			createdAt   time.Time
			deliveredAt *time.Time
		)

		if err := rows.Scan(
			&id,
			&orderType,
			&merchantID,
			&status,
			&driverID,
			&deliveryFee,
			&reconciled,
			&createdAt,
			&deliveredAt,
		); err != nil {
			return nil, err
		}

		aggregate, err := restoreOrder(
			id, orderType, merchantID, status, driverID, deliveryFee, reconciled, createdAt, deliveredAt)
		if err != nil {
			return nil, err
		}

		orders = append(orders, aggregate)
	}

	return orders, rows.Err()
}

func restoreOrder(
	id uuid.UUID,
	orderType int,
	merchantID uuid.UUID,
	status int,
	driverID *uuid.UUID,
	deliveryFee *decimal.Decimal,
	reconciled bool,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*order.Order, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	merchant, err := kernel.UUIDFromBytes(merchantID[:])
	if err != nil {
		return nil, err
	}

	var assignee *kernel.UUID
	if driverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*driverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		assignee = &dID
	}

	return order.RestoreOrder(
		orderID,
		order.Type(orderType),
		merchant,
		order.Status(status),
		assignee,
		deliveryFee,
		reconciled,
		createdAt,
		deliveredAt,
	)
}

func scanDailyRows(rows *sql.Rows) ([]*ledger.ManualDaily, error) {
	dailies := make([]*ledger.ManualDaily, 0)

	for rows.Next() {
		var (
			id                uuid.UUID
			driverID          uuid.UUID
			dayDate           time.Time
			ordersCount       int
			totalDeliveryFees decimal.Decimal
			amount            decimal.Decimal
			reconciled        bool
		)

		if err := rows.Scan(
			&id,
			&driverID,
			&dayDate,
			&ordersCount,
			&totalDeliveryFees,
			&amount,
			&reconciled,
		); err != nil {
			return nil, err
		}

		dailyID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		owner, err := kernel.UUIDFromBytes(driverID[:])
		if err != nil {
			return nil, err
		}

		entry, err := ledger.RestoreManualDaily(
			dailyID, owner, dayDate, ordersCount, totalDeliveryFees, amount, reconciled)
		if err != nil {
			return nil, err
		}

		dailies = append(dailies, entry)
	}

	return dailies, rows.Err()
}

func loadDriver(ctx context.Context, db *gorm.DB, driverID kernel.UUID) (*driver.Driver, error) {
	var (
		id                   uuid.UUID
		name                 string
		commissionType       int
		commissionRate       decimal.Decimal
		walletOpeningBalance decimal.Decimal
	)

	row := db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			commission_type,
			commission_rate,
			wallet_opening_balance
		FROM drivers
		WHERE id = ?
	`, driverID.Bytes()).Row()

	if err := row.Scan(&id, &name, &commissionType, &commissionRate, &walletOpeningBalance); err != nil {
		return nil, err
	}

	restoredID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		restoredID, name, driver.CommissionType(commissionType), commissionRate, walletOpeningBalance)
}

func loadUnreconciledOrders(ctx context.Context, db *gorm.DB, driverID kernel.UUID) ([]*order.Order, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT `+selectOrderColumns+`
		FROM orders
		WHERE driver_id = ?
		  AND status = ?
		  AND reconciled = false
		ORDER BY delivered_at
	`, driverID.Bytes(), int(order.StatusDelivered)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

func loadUnreconciledDailies(ctx context.Context, db *gorm.DB, driverID kernel.UUID) ([]*ledger.ManualDaily, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT `+selectDailyColumns+`
		FROM manual_dailies
		WHERE driver_id = ?
		  AND reconciled = false
		ORDER BY day_date
	`, driverID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDailyRows(rows)
}
