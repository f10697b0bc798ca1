package ports

import (
	"context"

	"shipment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// SkuRepository is the read side of the SKU master needed for reconciliation.
type SkuRepository interface {
	// Upsert stores the weight per unit of a SKU.
	Upsert(ctx context.Context, skuID kernel.SkuID, description string, weightPerUnit decimal.Decimal) error

	// WeightsFor returns the weight per unit of every requested SKU that the
	// master knows. Missing SKUs are simply absent from the map.
	WeightsFor(ctx context.Context, skuIDs []kernel.SkuID) (map[kernel.SkuID]decimal.Decimal, error)
}
