package queries

import (
	"errors"
	"time"

	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOutstandingQueryIsNotConstructed = errors.New(
	"GetOutstandingQuery must be created via NewGetOutstandingQuery constructor",
)

// GetOutstandingQuery retrieves a driver's current outstanding debt position:
// the unreconciled delivered orders and manual daily entries alongside the
// derived monetary breakdown.
//
// Example:
//
//	query, err := NewGetOutstandingQuery(driverID)
//	if err != nil {
//	    return err
//	}
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get outstanding debt: %w", err)
//	}
//	fmt.Printf("%s owes %s\n", summary.DriverName, summary.CompanyShare)
type GetOutstandingQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOutstandingQuery creates a query for a driver's outstanding debt.
func NewGetOutstandingQuery(driverID kernel.UUID) (GetOutstandingQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetOutstandingQuery{}, err
	}

	return GetOutstandingQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOutstandingQuery) Validate() error {
	return q.guard.Validate(ErrGetOutstandingQueryIsNotConstructed)
}

// DriverID returns the identifier of the driver being inspected.
func (q GetOutstandingQuery) DriverID() kernel.UUID {
	return q.driverID
}

// OutstandingOrderItem is one delivered, unreconciled order contributing to
// the outstanding total.
type OutstandingOrderItem struct {
	ID          kernel.UUID
	DeliveryFee decimal.Decimal
	DeliveredAt *time.Time
}

// OutstandingDailyItem is one unreconciled manual daily entry contributing to
// the outstanding total.
type OutstandingDailyItem struct {
	ID                kernel.UUID
	DayDate           time.Time
	OrdersCount       int
	TotalDeliveryFees decimal.Decimal
	Amount            decimal.Decimal
}

// GetOutstandingQueryResponse is the driver's full outstanding position.
type GetOutstandingQueryResponse struct {
	DriverID     kernel.UUID
	DriverName   string
	OrdersCount  int
	TotalFees    decimal.Decimal
	CompanyShare decimal.Decimal
	DriverShare  decimal.Decimal
	Orders       []OutstandingOrderItem
	Dailies      []OutstandingDailyItem
}
