package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository stores shipment orders and their planned items.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *shipment.Order) error {
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

// Update writes status, version and demurrage start. Items are fixed at
// creation and never rewritten here.
//
// The row is only touched while it still holds the previous version, so two
// writers racing on the same order cannot both win.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *shipment.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version-1).
		Updates(map[string]any{
			"status":          dto.Status,
			"version":         dto.Version,
			"demurrage_start": dto.DemurrageStart,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.explainMissedUpdate(ctx, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) explainMissedUpdate(ctx context.Context, aggregate *shipment.Order) error {
	var stored int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("version").
		Where("id = ?", aggregate.ID().Bytes()).
		Take(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	if err != nil {
		return err
	}

	return errs.NewVersionIsInvalidErrorWithCause(
		"order",
		fmt.Errorf("stored version %d, expected %d", stored, aggregate.Version()-1),
	)
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
