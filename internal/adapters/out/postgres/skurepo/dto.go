package skurepo

import (
	"github.com/shopspring/decimal"
)

// SkuDTO is one row of the SKU master.
type SkuDTO struct {
	ID            string          `gorm:"type:varchar(64);primaryKey"`
	Description   string          `gorm:"type:varchar(255);not null;default:''"`
	WeightPerUnit decimal.Decimal `gorm:"type:numeric;not null"`
}

func (SkuDTO) TableName() string {
	return "skus"
}
