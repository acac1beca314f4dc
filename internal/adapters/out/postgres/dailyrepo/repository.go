package dailyrepo

import (
	"context"
	"errors"

	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/ledger"
	"fleetledger/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormManualDailyRepository implements ManualDailyRepository using GORM.
type GormManualDailyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormManualDailyRepository creates a new GORM manual daily repository.
func NewGormManualDailyRepository(db *gorm.DB, tracker aggregateTracker) *GormManualDailyRepository {
	return &GormManualDailyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new manual daily entry to the database.
func (r *GormManualDailyRepository) Add(ctx context.Context, aggregate *ledger.ManualDaily) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing manual daily entry to the database.
func (r *GormManualDailyRepository) Update(ctx context.Context, aggregate *ledger.ManualDaily) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ManualDailyDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("manual daily", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a manual daily entry by ID.
func (r *GormManualDailyRepository) Get(ctx context.Context, id kernel.UUID) (*ledger.ManualDaily, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ManualDailyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("manual daily", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByIDs retrieves the entries for the listed identifiers. Ids whose row
// has since been deleted are skipped rather than failing the call.
func (r *GormManualDailyRepository) FindByIDs(ctx context.Context, ids []kernel.UUID) ([]*ledger.ManualDaily, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ManualDailyDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// FindUnreconciled retrieves the driver's unsettled entries ordered by day.
func (r *GormManualDailyRepository) FindUnreconciled(ctx context.Context, driverID kernel.UUID) ([]*ledger.ManualDaily, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ManualDailyDTO
	err := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID.Bytes()).
		Where("reconciled = false").
		Order("day_date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// Delete removes a manual daily entry from the database.
func (r *GormManualDailyRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ManualDailyDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("manual daily", id.String())
	}

	return nil
}

func (r *GormManualDailyRepository) toDomainAll(dtos []ManualDailyDTO) ([]*ledger.ManualDaily, error) {
	entries := make([]*ledger.ManualDaily, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
