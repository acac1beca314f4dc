// Package dailyrepo persists manual daily ledger entries.
package dailyrepo

import (
	"time"

	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ManualDailyDTO is the DTO for the ManualDaily aggregate.
type ManualDailyDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DriverID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	DayDate           time.Time       `gorm:"not null"`
	OrdersCount       int             `gorm:"not null"`
	TotalDeliveryFees decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount            decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Reconciled        bool            `gorm:"index"`
}

// TableName overrides the table name used by ManualDailyDTO.
func (ManualDailyDTO) TableName() string {
	return "manual_dailies"
}

func fromDomain(aggregate *ledger.ManualDaily) ManualDailyDTO {
	return ManualDailyDTO{
		ID:                aggregate.ID().Bytes(),
		DriverID:          aggregate.Driver().Bytes(),
		DayDate:           aggregate.DayDate(),
		OrdersCount:       aggregate.OrdersCount(),
		TotalDeliveryFees: aggregate.TotalDeliveryFees(),
		Amount:            aggregate.Amount(),
		Reconciled:        aggregate.Reconciled(),
	}
}

func toDomain(dto ManualDailyDTO) (*ledger.ManualDaily, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return ledger.RestoreManualDaily(
		id,
		driverID,
		dto.DayDate,
		dto.OrdersCount,
		dto.TotalDeliveryFees,
		dto.Amount,
		dto.Reconciled,
	)
}
