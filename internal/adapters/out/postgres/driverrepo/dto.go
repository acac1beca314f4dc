package driverrepo

import (
	"fleetledger/internal/core/domain/model/driver"
	"fleetledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DriverDTO is the DTO for the Driver aggregate.
type DriverDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                 string          `gorm:"not null"`
	CommissionType       int             `gorm:"not null"`
	CommissionRate       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	WalletOpeningBalance decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName overrides the table name used by DriverDTO.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:                   aggregate.ID().Bytes(),
		Name:                 aggregate.Name(),
		CommissionType:       int(aggregate.CommissionType()),
		CommissionRate:       aggregate.CommissionRate(),
		WalletOpeningBalance: aggregate.WalletOpeningBalance(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		driver.CommissionType(dto.CommissionType),
		dto.CommissionRate,
		dto.WalletOpeningBalance,
	)
}
