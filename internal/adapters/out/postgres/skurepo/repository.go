package skurepo

import (
	"context"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSkuRepository reads and maintains the SKU master.
type GormSkuRepository struct {
	db *gorm.DB
}

func NewGormSkuRepository(db *gorm.DB) *GormSkuRepository {
	return &GormSkuRepository{db: db}
}

func (r *GormSkuRepository) Upsert(
	ctx context.Context,
	skuID kernel.SkuID,
	description string,
	weightPerUnit decimal.Decimal,
) error {
	if err := skuID.Validate(); err != nil {
		return err
	}
	if weightPerUnit.IsNegative() {
		return errs.NewValueIsOutOfRangeError("weightPerUnit", weightPerUnit.String(), 0, "unbounded")
	}

	dto := SkuDTO{ID: skuID.String(), Description: description, WeightPerUnit: weightPerUnit}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "weight_per_unit"}),
		}).
		Create(&dto).Error
}

func (r *GormSkuRepository) WeightsFor(ctx context.Context, skuIDs []kernel.SkuID) (map[kernel.SkuID]decimal.Decimal, error) {
	weights := make(map[kernel.SkuID]decimal.Decimal, len(skuIDs))
	if len(skuIDs) == 0 {
		return weights, nil
	}

	codes := make([]string, 0, len(skuIDs))
	for _, id := range skuIDs {
		codes = append(codes, id.String())
	}

	var dtos []SkuDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", codes).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		id, err := kernel.NewSkuID(dto.ID)
		if err != nil {
			return nil, err
		}
		weights[id] = dto.WeightPerUnit
	}

	return weights, nil
}
