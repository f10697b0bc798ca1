package shipment

import (
	"errors"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrOrderItemIsNotConstructed is returned when using a zero-value OrderItem.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is one planned line of a shipment order.
//
// Quantities and prices are exact decimals; PlannedValue is derived and never
// stored on its own. A planned quantity of zero is allowed (placeholder lines
// kept for a supplier quote).
type OrderItem struct {
	skuID           kernel.SkuID
	plannedQuantity decimal.Decimal
	unitPrice       decimal.Decimal
	guard           guard.ConstructorGuard
}

// NewOrderItem creates a planned line.
//
// Parameters:
//   - skuID: reference into the SKU master
//   - plannedQuantity: units ordered, must not be negative
//   - unitPrice: supplier-quoted price per unit, must not be negative
//
// Returns:
//   - *OrderItem on success
//   - joined validation errors otherwise
//
// Example:
//
//	item, err := shipment.NewOrderItem(kernel.MustNewSkuID("SKU1"), decimal.NewFromInt(100), decimal.RequireFromString("5.00"))
func NewOrderItem(skuID kernel.SkuID, plannedQuantity, unitPrice decimal.Decimal) (*OrderItem, error) {
	item := &OrderItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setSkuID(skuID),
		item.setPlannedQuantity(plannedQuantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate rejects items not created through NewOrderItem.
func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// SkuID returns the referenced SKU.
func (i *OrderItem) SkuID() kernel.SkuID {
	return i.skuID
}

// PlannedQuantity returns the ordered units.
func (i *OrderItem) PlannedQuantity() decimal.Decimal {
	return i.plannedQuantity
}

// UnitPrice returns the supplier-quoted price per unit.
func (i *OrderItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// PlannedValue returns plannedQuantity × unitPrice, unrounded.
func (i *OrderItem) PlannedValue() decimal.Decimal {
	return i.plannedQuantity.Mul(i.unitPrice)
}

func (i *OrderItem) setSkuID(skuID kernel.SkuID) error {
	if err := skuID.Validate(); err != nil {
		return err
	}
	i.skuID = skuID
	return nil
}

func (i *OrderItem) setPlannedQuantity(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return errs.NewValueIsOutOfRangeError("plannedQuantity", quantity.String(), 0, "unbounded")
	}
	i.plannedQuantity = quantity
	return nil
}

func (i *OrderItem) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("unitPrice", price.String(), 0, "unbounded")
	}
	i.unitPrice = price
	return nil
}
