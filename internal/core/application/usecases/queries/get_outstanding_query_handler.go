package queries

import (
	"context"

	"fleetledger/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetOutstandingQueryHandler derives a driver's outstanding debt from the
// current store contents. The arithmetic lives in the domain calculator, so
// this handler only loads rows and shapes the response.
type GetOutstandingQueryHandler struct {
	db         *gorm.DB
	calculator services.LedgerCalculator
}

// NewGetOutstandingQueryHandler creates a handler for outstanding-debt queries.
// Requires a GORM database connection for query execution.
func NewGetOutstandingQueryHandler(db *gorm.DB) GetOutstandingQueryHandler {
	return GetOutstandingQueryHandler{
		db:         db,
		calculator: services.NewLedgerCalculator(),
	}
}

// Handle executes the outstanding-debt derivation for one driver.
func (h GetOutstandingQueryHandler) Handle(
	ctx context.Context,
	query GetOutstandingQuery,
) (GetOutstandingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOutstandingQueryResponse{}, err
	}

	d, err := loadDriver(ctx, h.db, query.DriverID())
	if err != nil {
		return GetOutstandingQueryResponse{}, err
	}

	orders, err := loadUnreconciledOrders(ctx, h.db, query.DriverID())
	if err != nil {
		return GetOutstandingQueryResponse{}, err
	}

	dailies, err := loadUnreconciledDailies(ctx, h.db, query.DriverID())
	if err != nil {
		return GetOutstandingQueryResponse{}, err
	}

	summary, err := h.calculator.Outstanding(d, orders, dailies)
	if err != nil {
		return GetOutstandingQueryResponse{}, err
	}

	response := GetOutstandingQueryResponse{
		DriverID:     d.ID(),
		DriverName:   d.Name(),
		OrdersCount:  summary.OrdersCount,
		TotalFees:    summary.TotalFees,
		CompanyShare: summary.CompanyShare,
		DriverShare:  summary.DriverShare,
		Orders:       make([]OutstandingOrderItem, 0, len(summary.Orders)),
		Dailies:      make([]OutstandingDailyItem, 0, len(summary.Dailies)),
	}

	for _, o := range summary.Orders {
		item := OutstandingOrderItem{
			ID:          o.ID(),
			DeliveredAt: o.DeliveredAt(),
		}
		if fee := o.DeliveryFee(); fee != nil {
			item.DeliveryFee = *fee
		}
		response.Orders = append(response.Orders, item)
	}

	for _, m := range summary.Dailies {
		response.Dailies = append(response.Dailies, OutstandingDailyItem{
			ID:                m.ID(),
			DayDate:           m.DayDate(),
			OrdersCount:       m.OrdersCount(),
			TotalDeliveryFees: m.TotalDeliveryFees(),
			Amount:            m.Amount(),
		})
	}

	return response, nil
}
