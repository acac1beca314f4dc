package queries

import (
	"errors"
	"time"

	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPaymentHistoryQueryIsNotConstructed = errors.New(
	"GetPaymentHistoryQuery must be created via NewGetPaymentHistoryQuery constructor",
)

// GetPaymentHistoryQuery retrieves a driver's settlement history. Each item
// carries the frozen settled amount plus a breakdown recomputed from the
// orders and dailies that still exist, so the view self-heals after
// administrative deletions instead of showing stale denormalized figures.
type GetPaymentHistoryQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentHistoryQuery creates a query for a driver's settlement history.
func NewGetPaymentHistoryQuery(driverID kernel.UUID) (GetPaymentHistoryQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetPaymentHistoryQuery{}, err
	}

	return GetPaymentHistoryQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentHistoryQueryIsNotConstructed)
}

// DriverID returns the identifier of the driver being inspected.
func (q GetPaymentHistoryQuery) DriverID() kernel.UUID {
	return q.driverID
}

// PaymentHistoryItem is one settlement with its recomputed breakdown.
// Amount is the company share frozen at settlement time; the remaining fields
// reflect whatever resolved items are still present in the store.
type PaymentHistoryItem struct {
	PaymentID    kernel.UUID
	CreatedAt    time.Time
	Amount       decimal.Decimal
	OrdersCount  int
	TotalFees    decimal.Decimal
	CompanyShare decimal.Decimal
}
