// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status and driver assignment, the two axes every ledger and bulk
// query filters on.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderType   int        `gorm:"not null"`
	MerchantID  uuid.UUID  `gorm:"type:uuid;index"`
	Status      int        `gorm:"index"`
	DriverID    *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryFee *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Reconciled  bool       `gorm:"index"`
	CreatedAt   time.Time
	DeliveredAt *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderType:   int(aggregate.Type()),
		MerchantID:  aggregate.Merchant().Bytes(),
		Status:      int(aggregate.Status()),
		DriverID:    driverID,
		DeliveryFee: aggregate.DeliveryFee(),
		Reconciled:  aggregate.Reconciled(),
		CreatedAt:   aggregate.CreatedAt(),
		DeliveredAt: aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	return order.RestoreOrder(
		id,
		order.Type(dto.OrderType),
		merchantID,
		order.Status(dto.Status),
		driverID,
		dto.DeliveryFee,
		dto.Reconciled,
		dto.CreatedAt,
		dto.DeliveredAt,
	)
}
