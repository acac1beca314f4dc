package queries

import (
	"errors"

	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDebtSummaryQueryIsNotConstructed = errors.New(
	"GetDebtSummaryQuery must be created via NewGetDebtSummaryQuery constructor",
)

// GetDebtSummaryQuery retrieves the outstanding position of every driver,
// for back-office dashboards and the daily debt report.
type GetDebtSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDebtSummaryQuery creates a query for the fleet-wide debt summary.
// This is a parameterless query covering all drivers.
func NewGetDebtSummaryQuery() GetDebtSummaryQuery {
	return GetDebtSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDebtSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDebtSummaryQueryIsNotConstructed)
}

// DebtSummaryItem is one driver's aggregate outstanding position.
type DebtSummaryItem struct {
	DriverID     kernel.UUID
	DriverName   string
	OrdersCount  int
	TotalFees    decimal.Decimal
	CompanyShare decimal.Decimal
	DriverShare  decimal.Decimal
}
