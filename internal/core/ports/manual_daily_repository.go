package ports

import (
	"context"

	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/ledger"
)

// ManualDailyRepository defines the persistence contract for manual daily
// summary entries.
type ManualDailyRepository interface {
	// Add persists a new manual daily entry to storage.
	Add(ctx context.Context, aggregate *ledger.ManualDaily) error

	// Update persists changes to an existing manual daily entry.
	Update(ctx context.Context, aggregate *ledger.ManualDaily) error

	// Get retrieves a manual daily entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*ledger.ManualDaily, error)

	// FindByIDs retrieves the entries for the listed identifiers.
	// Identifiers without a row are skipped, so the result may be shorter
	// than the input.
	FindByIDs(ctx context.Context, ids []kernel.UUID) ([]*ledger.ManualDaily, error)

	// FindUnreconciled retrieves the driver's entries that have not yet been
	// folded into a settlement.
	FindUnreconciled(ctx context.Context, driverID kernel.UUID) ([]*ledger.ManualDaily, error)

	// Delete removes a manual daily entry from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
