package loading

import (
	"errors"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLoadedItemIsNotConstructed is returned when using a zero-value LoadedItem.
var ErrLoadedItemIsNotConstructed = errors.New("LoadedItem must be created via NewLoadedItem constructor")

// LoadedItem is one reconciled line of a loading record.
//
// Only the canonical inputs are held: both quantities, the planned value, the
// unit price and the SKU weight. Every weight, actual value and variance is
// derived from them on read, so the planned and actual sides can never drift
// from their variance. No method rounds.
type LoadedItem struct {
	skuID           kernel.SkuID
	plannedQuantity decimal.Decimal
	actualQuantity  decimal.Decimal
	plannedValue    decimal.Decimal
	unitPrice       decimal.Decimal
	weightPerUnit   decimal.Decimal
	guard           guard.ConstructorGuard
}

// LoadedItemParams groups the canonical inputs of a LoadedItem.
type LoadedItemParams struct {
	SkuID           kernel.SkuID
	PlannedQuantity decimal.Decimal
	ActualQuantity  decimal.Decimal
	PlannedValue    decimal.Decimal
	UnitPrice       decimal.Decimal
	WeightPerUnit   decimal.Decimal
}

// NewLoadedItem validates the inputs; quantities, values, price and weight
// must not be negative.
func NewLoadedItem(p LoadedItemParams) (*LoadedItem, error) {
	item := &LoadedItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setSkuID(p.SkuID),
		nonNegative("plannedQuantity", p.PlannedQuantity, &item.plannedQuantity),
		nonNegative("actualQuantity", p.ActualQuantity, &item.actualQuantity),
		nonNegative("plannedValue", p.PlannedValue, &item.plannedValue),
		nonNegative("unitPrice", p.UnitPrice, &item.unitPrice),
		nonNegative("weightPerUnit", p.WeightPerUnit, &item.weightPerUnit),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate rejects items not created through NewLoadedItem.
func (i *LoadedItem) Validate() error {
	if i == nil {
		return ErrLoadedItemIsNotConstructed
	}
	return i.guard.Validate(ErrLoadedItemIsNotConstructed)
}

func (i *LoadedItem) SkuID() kernel.SkuID              { return i.skuID }
func (i *LoadedItem) PlannedQuantity() decimal.Decimal { return i.plannedQuantity }
func (i *LoadedItem) ActualQuantity() decimal.Decimal  { return i.actualQuantity }
func (i *LoadedItem) PlannedValue() decimal.Decimal    { return i.plannedValue }
func (i *LoadedItem) UnitPrice() decimal.Decimal       { return i.unitPrice }
func (i *LoadedItem) WeightPerUnit() decimal.Decimal   { return i.weightPerUnit }

// VarianceQuantity is actualQuantity - plannedQuantity.
func (i *LoadedItem) VarianceQuantity() decimal.Decimal {
	return i.actualQuantity.Sub(i.plannedQuantity)
}

// PlannedWeight is weightPerUnit × plannedQuantity.
func (i *LoadedItem) PlannedWeight() decimal.Decimal {
	return i.weightPerUnit.Mul(i.plannedQuantity)
}

// ActualWeight is weightPerUnit × actualQuantity.
func (i *LoadedItem) ActualWeight() decimal.Decimal {
	return i.weightPerUnit.Mul(i.actualQuantity)
}

// VarianceWeight is actualWeight - plannedWeight.
func (i *LoadedItem) VarianceWeight() decimal.Decimal {
	return i.ActualWeight().Sub(i.PlannedWeight())
}

// ActualValue is unitPrice × actualQuantity.
func (i *LoadedItem) ActualValue() decimal.Decimal {
	return i.unitPrice.Mul(i.actualQuantity)
}

// VarianceValue is actualValue - plannedValue.
func (i *LoadedItem) VarianceValue() decimal.Decimal {
	return i.ActualValue().Sub(i.plannedValue)
}

func (i *LoadedItem) setSkuID(skuID kernel.SkuID) error {
	if err := skuID.Validate(); err != nil {
		return err
	}
	i.skuID = skuID
	return nil
}

func nonNegative(name string, value decimal.Decimal, dst *decimal.Decimal) error {
	if value.IsNegative() {
		return errs.NewValueIsOutOfRangeError(name, value.String(), 0, "unbounded")
	}
	*dst = value
	return nil
}
