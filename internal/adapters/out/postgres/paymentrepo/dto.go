// Package paymentrepo persists settlement payments and the join rows
// linking each payment to the orders and manual dailies it covered.
package paymentrepo

import (
	"time"

	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO is the DTO for the Payment aggregate.
type PaymentDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DriverID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName overrides the table name used by PaymentDTO.
func (PaymentDTO) TableName() string {
	return "payments"
}

// PaymentOrderDTO links a payment to one order it settled.
type PaymentOrderDTO struct {
	PaymentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName overrides the table name used by PaymentOrderDTO.
func (PaymentOrderDTO) TableName() string {
	return "payment_orders"
}

// PaymentDailyDTO links a payment to one manual daily it settled.
type PaymentDailyDTO struct {
	PaymentID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ManualDailyID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName overrides the table name used by PaymentDailyDTO.
func (PaymentDailyDTO) TableName() string {
	return "payment_manual_dailies"
}

func fromDomain(aggregate *ledger.Payment) (PaymentDTO, []PaymentOrderDTO, []PaymentDailyDTO) {
	payment := PaymentDTO{
		ID:        aggregate.ID().Bytes(),
		DriverID:  aggregate.Driver().Bytes(),
		Amount:    aggregate.Amount(),
		CreatedAt: aggregate.CreatedAt(),
	}

	orderLinks := make([]PaymentOrderDTO, 0, len(aggregate.OrderIDs()))
	for _, oid := range aggregate.OrderIDs() {
		orderLinks = append(orderLinks, PaymentOrderDTO{
			PaymentID: payment.ID,
			OrderID:   oid.Bytes(),
		})
	}

	dailyLinks := make([]PaymentDailyDTO, 0, len(aggregate.ManualDailyIDs()))
	for _, mid := range aggregate.ManualDailyIDs() {
		dailyLinks = append(dailyLinks, PaymentDailyDTO{
			PaymentID:     payment.ID,
			ManualDailyID: mid.Bytes(),
		})
	}

	return payment, orderLinks, dailyLinks
}

func toDomain(dto PaymentDTO, orderLinks []PaymentOrderDTO, dailyLinks []PaymentDailyDTO) (*ledger.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(orderLinks))
	for _, link := range orderLinks {
		oid, linkErr := kernel.UUIDFromBytes(link.OrderID[:])
		if linkErr != nil {
			return nil, linkErr
		}
		orderIDs = append(orderIDs, oid)
	}

	dailyIDs := make([]kernel.UUID, 0, len(dailyLinks))
	for _, link := range dailyLinks {
		mid, linkErr := kernel.UUIDFromBytes(link.ManualDailyID[:])
		if linkErr != nil {
			return nil, linkErr
		}
		dailyIDs = append(dailyIDs, mid)
	}

	return ledger.RestorePayment(id, driverID, dto.Amount, orderIDs, dailyIDs, dto.CreatedAt)
}
