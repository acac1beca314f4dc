package paymentrepo

import (
	"context"
	"errors"

	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/ledger"
	"fleetledger/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment and its join rows to the database.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *ledger.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	payment, orderLinks, dailyLinks := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).Create(&payment).Error; err != nil {
		return err
	}

	if len(orderLinks) > 0 {
		if err := r.db.WithContext(ctx).Create(&orderLinks).Error; err != nil {
			return err
		}
	}

	if len(dailyLinks) > 0 {
		if err := r.db.WithContext(ctx).Create(&dailyLinks).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a payment by ID together with its order and daily references.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*ledger.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id.String())
		}
		return nil, err
	}

	orderLinks, dailyLinks, err := r.loadLinks(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, orderLinks, dailyLinks)
}

// GetAllByDriver retrieves the driver's payments, newest first.
func (r *GormPaymentRepository) GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*ledger.Payment, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*ledger.Payment, 0, len(dtos))
	for _, dto := range dtos {
		orderLinks, dailyLinks, linkErr := r.loadLinks(ctx, dto.ID)
		if linkErr != nil {
			return nil, linkErr
		}

		payment, restoreErr := toDomain(dto, orderLinks, dailyLinks)
		if restoreErr != nil {
			return nil, restoreErr
		}
		payments = append(payments, payment)
	}

	return payments, nil
}

// Delete removes a payment and its join rows from the database.
func (r *GormPaymentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&PaymentOrderDTO{}, "payment_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&PaymentDailyDTO{}, "payment_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PaymentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("payment", id.String())
	}

	return nil
}

func (r *GormPaymentRepository) loadLinks(ctx context.Context, paymentID uuid.UUID) ([]PaymentOrderDTO, []PaymentDailyDTO, error) {
	var orderLinks []PaymentOrderDTO
	if err := r.db.WithContext(ctx).Find(&orderLinks, "payment_id = ?", paymentID).Error; err != nil {
		return nil, nil, err
	}

	var dailyLinks []PaymentDailyDTO
	if err := r.db.WithContext(ctx).Find(&dailyLinks, "payment_id = ?", paymentID).Error; err != nil {
		return nil, nil, err
	}

	return orderLinks, dailyLinks, nil
}
