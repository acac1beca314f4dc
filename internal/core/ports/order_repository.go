package ports

import (
	"context"

	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/order"
)

// OrderFilter narrows bulk reads over order aggregates. Zero-value fields
// are ignored, so an empty filter matches everything.
type OrderFilter struct {
	// Statuses restricts results to orders in any of the listed statuses.
	Statuses []order.Status

	// Unassigned, when set, selects orders with (true) or without (false)
	// a driver assignment.
	Unassigned *bool

	// DriverID restricts results to orders assigned to the given driver.
	DriverID *kernel.UUID
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindByIDs retrieves the aggregates for the listed identifiers.
	// Identifiers without a row are skipped, so the result may be shorter
	// than the input.
	FindByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// FindByFilter retrieves all orders matching the filter.
	FindByFilter(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// FindUnreconciledDelivered retrieves the driver's delivered orders that
	// have not yet been folded into a settlement.
	FindUnreconciledDelivered(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)

	// CountActiveByDriver counts the driver's orders that are still in
	// flight, meaning neither Delivered nor Cancelled.
	CountActiveByDriver(ctx context.Context, driverID kernel.UUID) (int64, error)

	// Delete removes an order aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
