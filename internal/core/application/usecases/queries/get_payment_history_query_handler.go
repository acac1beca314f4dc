package queries

import (
	"context"
	"time"

	"fleetledger/internal/core/domain/model/driver"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPaymentHistoryQueryHandler lists a driver's settlements newest first.
// The per-payment breakdown is recomputed from the currently existing
// resolved rows on every read. A payment whose orders were since deleted
// keeps its frozen amount while the breakdown shrinks accordingly.
type GetPaymentHistoryQueryHandler struct {
	db         *gorm.DB
	calculator services.LedgerCalculator
}

// NewGetPaymentHistoryQueryHandler creates a handler for settlement history queries.
func NewGetPaymentHistoryQueryHandler(db *gorm.DB) GetPaymentHistoryQueryHandler {
	return GetPaymentHistoryQueryHandler{
		db:         db,
		calculator: services.NewLedgerCalculator(),
	}
}

// Handle executes the settlement history query for one driver.
func (h GetPaymentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentHistoryQuery,
) ([]PaymentHistoryItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	d, err := loadDriver(ctx, h.db, query.DriverID())
	if err != nil {
		return nil, err
	}

	items := make([]PaymentHistoryItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			amount,
			created_at
		FROM payments
		WHERE driver_id = ?
		ORDER BY created_at DESC
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			amount    decimal.Decimal
			createdAt time.Time
		)

		if err = rows.Scan(&id, &amount, &createdAt); err != nil {
			return nil, err
		}

		paymentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, PaymentHistoryItem{
			PaymentID: paymentID,
			CreatedAt: createdAt,
			Amount:    amount,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	// A payment whose referenced rows were all deleted since no longer
	// represents real settled debt and is dropped from the listing.
	resolved := make([]PaymentHistoryItem, 0, len(items))
	for i := range items {
		keep, recomputeErr := h.recompute(ctx, d, &items[i])
		if recomputeErr != nil {
			return nil, recomputeErr
		}
		if keep {
			resolved = append(resolved, items[i])
		}
	}

	return resolved, nil
}

// recompute fills the breakdown fields of one history item from the resolved
// rows that still exist. Returns false when no eligible row remains, meaning
// the item should be dropped from the listing.
func (h GetPaymentHistoryQueryHandler) recompute(
	ctx context.Context,
	d *driver.Driver,
	item *PaymentHistoryItem,
) (bool, error) {
	orderRows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+selectOrderColumns+`
		FROM orders
		WHERE id IN (
			SELECT order_id FROM payment_orders WHERE payment_id = ?
		)
	`, item.PaymentID.Bytes()).Rows()
	if err != nil {
		return false, err
	}
	defer orderRows.Close()

	orders, err := scanOrderRows(orderRows)
	if err != nil {
		return false, err
	}

	dailyRows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+selectDailyColumns+`
		FROM manual_dailies
		WHERE id IN (
			SELECT manual_daily_id FROM payment_manual_dailies WHERE payment_id = ?
		)
	`, item.PaymentID.Bytes()).Rows()
	if err != nil {
		return false, err
	}
	defer dailyRows.Close()

	dailies, err := scanDailyRows(dailyRows)
	if err != nil {
		return false, err
	}

	summary, err := h.calculator.SettledBreakdown(d, orders, dailies)
	if err != nil {
		return false, err
	}

	if summary.IsEmpty() {
		return false, nil
	}

	item.OrdersCount = summary.OrdersCount
	item.TotalFees = summary.TotalFees
	item.CompanyShare = summary.CompanyShare

	return true, nil
}
