package loadingrepo

import (
	"context"
	"errors"

	"shipment/internal/adapters/out/postgres/pgerrors"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/loading"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLoadingRecordRepository stores actual loading records with their items.
type GormLoadingRecordRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormLoadingRecordRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadingRecordRepository {
	return &GormLoadingRecordRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormLoadingRecordRepository) Add(ctx context.Context, record *loading.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("loadingRecord", err)
		}
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Update rewrites the record header and replaces its item rows.
func (r *GormLoadingRecordRepository) Update(ctx context.Context, record *loading.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	db := r.db.WithContext(ctx)

	result := db.Model(&LoadingRecordDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"is_locked": dto.IsLocked,
			"loaded_at": dto.LoadedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("loadingRecord", record.ID().String())
	}

	if err := db.Where("record_id = ?", dto.ID).Delete(&LoadedItemDTO{}).Error; err != nil {
		return err
	}
	if err := db.Create(&dto.Items).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

func (r *GormLoadingRecordRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*loading.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto LoadingRecordDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("loadingRecord", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormLoadingRecordRepository) LockByOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&LoadingRecordDTO{}).
		Where("order_id = ? AND is_locked = ?", orderID.Bytes(), false).
		Update("is_locked", true).Error
}

func (r *GormLoadingRecordRepository) LockAllShipped(ctx context.Context) (int64, error) {
	shippedOrLater := make([]string, 0, 4)
	for _, status := range shipment.Workflow().Ordered() {
		if status.IsShippedOrLater() {
			shippedOrLater = append(shippedOrLater, status.String())
		}
	}

	result := r.db.WithContext(ctx).
		Model(&LoadingRecordDTO{}).
		Where("is_locked = ?", false).
		Where("order_id IN (?)", r.db.Table("orders").Select("id").Where("status IN ?", shippedOrLater)).
		Update("is_locked", true)

	return result.RowsAffected, result.Error
}
