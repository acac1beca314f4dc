package queries

import (
	"context"

	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDebtSummaryQueryHandler derives every driver's outstanding position.
// Drivers with nothing outstanding are omitted from the result.
type GetDebtSummaryQueryHandler struct {
	db         *gorm.DB
	calculator services.LedgerCalculator
}

// NewGetDebtSummaryQueryHandler creates a handler for fleet-wide debt queries.
func NewGetDebtSummaryQueryHandler(db *gorm.DB) GetDebtSummaryQueryHandler {
	return GetDebtSummaryQueryHandler{
		db:         db,
		calculator: services.NewLedgerCalculator(),
	}
}

// Handle executes the debt summary derivation across all drivers.
func (h GetDebtSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDebtSummaryQuery,
) ([]DebtSummaryItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	driverIDs, err := h.driverIDs(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]DebtSummaryItem, 0, len(driverIDs))
	for _, id := range driverIDs {
		d, err := loadDriver(ctx, h.db, id)
		if err != nil {
			return nil, err
		}

		orders, err := loadUnreconciledOrders(ctx, h.db, id)
		if err != nil {
			return nil, err
		}

		dailies, err := loadUnreconciledDailies(ctx, h.db, id)
		if err != nil {
			return nil, err
		}

		summary, err := h.calculator.Outstanding(d, orders, dailies)
		if err != nil {
			return nil, err
		}
		if summary.IsEmpty() {
			continue
		}

		items = append(items, DebtSummaryItem{
			DriverID:     d.ID(),
			DriverName:   d.Name(),
			OrdersCount:  summary.OrdersCount,
			TotalFees:    summary.TotalFees,
			CompanyShare: summary.CompanyShare,
			DriverShare:  summary.DriverShare,
		})
	}

	return items, nil
}

func (h GetDebtSummaryQueryHandler) driverIDs(ctx context.Context) ([]kernel.UUID, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM drivers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]kernel.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		ids = append(ids, driverID)
	}

	return ids, rows.Err()
}
