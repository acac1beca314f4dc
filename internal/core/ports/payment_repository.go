package ports

import (
	"context"

	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/ledger"
)

// PaymentRepository defines the persistence contract for settlement payment
// records. Payments are immutable once written; reversal deletes the record
// after un-reconciling the items it resolved.
type PaymentRepository interface {
	// Add persists a new payment record to storage.
	Add(ctx context.Context, aggregate *ledger.Payment) error

	// Get retrieves a payment record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*ledger.Payment, error)

	// GetAllByDriver retrieves the driver's payment records ordered from
	// newest to oldest.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*ledger.Payment, error)

	// Delete removes a payment record from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
