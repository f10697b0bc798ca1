package services

import (
	"fmt"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/loading"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PlannedLine is one line of the plan being reconciled.
//
// QuotedUnitPrice is the supplier quote. It is only consulted when the
// planned quantity is zero and the unit price cannot be derived from the
// planned value.
type PlannedLine struct {
	SkuID           kernel.SkuID
	PlannedQuantity decimal.Decimal
	PlannedValue    decimal.Decimal
	QuotedUnitPrice decimal.NullDecimal
}

// ActualEntry is what was really loaded for one SKU.
type ActualEntry struct {
	SkuID          kernel.SkuID
	ActualQuantity decimal.Decimal
}

// PlannedLinesFromOrder builds the plan of an order, quoting each line's
// unit price.
func PlannedLinesFromOrder(o *shipment.Order) []PlannedLine {
	items := o.Items()
	lines := make([]PlannedLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, PlannedLine{
			SkuID:           item.SkuID(),
			PlannedQuantity: item.PlannedQuantity(),
			PlannedValue:    item.PlannedValue(),
			QuotedUnitPrice: decimal.NewNullDecimal(item.UnitPrice()),
		})
	}
	return lines
}

// VarianceEngine reconciles planned against actual loaded quantities. It is a
// pure function of its inputs. Only a non-terminating unit price quotient is
// cut, at decimal.DivisionPrecision digits; everything else is exact.
type VarianceEngine struct{}

func NewVarianceEngine() VarianceEngine {
	return VarianceEngine{}
}

// Reconcile produces one loaded item per planned line, in planned order.
//
// Parameters:
//   - planned: the plan; SKUs must be unique
//   - actual: loaded quantities; a planned SKU without an entry is taken as
//     loaded exactly as planned
//   - weights: weight per unit from the SKU master, keyed by SKU
//
// Returns:
//   - loaded items with unit price = planned value / planned quantity
//   - *loading.UnknownSkuError for an actual entry outside the plan or a SKU
//     without master weight
//   - *loading.DivisionByZeroError for a zero-quantity line without a quote
//   - errs.ValueIsInvalidError for duplicated SKUs
//   - errs.ValueIsOutOfRangeError for a negative actual quantity
//
// Example:
//
//	items, err := engine.Reconcile(plan, []services.ActualEntry{{SkuID: sku, ActualQuantity: decimal.NewFromInt(95)}}, weights)
//	// plan 100 @ 5.00: items[0].VarianceQuantity() == -5, items[0].VarianceValue() == -25
func (VarianceEngine) Reconcile(
	planned []PlannedLine,
	actual []ActualEntry,
	weights map[kernel.SkuID]decimal.Decimal,
) ([]*loading.LoadedItem, error) {
	plannedSkus := make(map[kernel.SkuID]struct{}, len(planned))
	for _, line := range planned {
		if _, dup := plannedSkus[line.SkuID]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"planned", fmt.Errorf("sku %s is planned more than once", line.SkuID))
		}
		plannedSkus[line.SkuID] = struct{}{}
	}

	actualBySku := make(map[kernel.SkuID]decimal.Decimal, len(actual))
	for _, entry := range actual {
		if _, ok := plannedSkus[entry.SkuID]; !ok {
			return nil, loading.NewUnknownSkuError(entry.SkuID.String(), "not part of the plan")
		}
		if _, dup := actualBySku[entry.SkuID]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"actual", fmt.Errorf("sku %s is reported more than once", entry.SkuID))
		}
		if entry.ActualQuantity.IsNegative() {
			return nil, errs.NewValueIsOutOfRangeError("actualQuantity", entry.ActualQuantity.String(), 0, "unbounded")
		}
		actualBySku[entry.SkuID] = entry.ActualQuantity
	}

	items := make([]*loading.LoadedItem, 0, len(planned))
	for _, line := range planned {
		weight, ok := weights[line.SkuID]
		if !ok {
			return nil, loading.NewUnknownSkuError(line.SkuID.String(), "no weight in the sku master")
		}

		unitPrice, err := unitPriceOf(line)
		if err != nil {
			return nil, err
		}

		actualQuantity, reported := actualBySku[line.SkuID]
		if !reported {
			actualQuantity = line.PlannedQuantity
		}

		item, err := loading.NewLoadedItem(loading.LoadedItemParams{
			SkuID:           line.SkuID,
			PlannedQuantity: line.PlannedQuantity,
			ActualQuantity:  actualQuantity,
			PlannedValue:    line.PlannedValue,
			UnitPrice:       unitPrice,
			WeightPerUnit:   weight,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func unitPriceOf(line PlannedLine) (decimal.Decimal, error) {
	if line.PlannedQuantity.IsZero() {
		if !line.QuotedUnitPrice.Valid {
			return decimal.Zero, loading.NewDivisionByZeroError(line.SkuID.String())
		}
		return line.QuotedUnitPrice.Decimal, nil
	}
	return line.PlannedValue.Div(line.PlannedQuantity), nil
}
