package commands

import (
	"errors"
	"fmt"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one planned item is required")
)

// CreateOrderItem is one planned line of a new order. WeightPerUnit and
// Description are optional and, when a weight is present, seed the SKU master.
type CreateOrderItem struct {
	SkuID           kernel.SkuID
	PlannedQuantity decimal.Decimal
	UnitPrice       decimal.Decimal
	WeightPerUnit   decimal.NullDecimal
	Description     string
}

// CreateOrderCommand represents a request to open a new shipment order in Draft.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), shipment.Container40HC, shipment.CurrencyUSD, []CreateOrderItem{{
//	    SkuID:           kernel.MustNewSkuID("MUG-01"),
//	    PlannedQuantity: decimal.NewFromInt(1200),
//	    UnitPrice:       decimal.RequireFromString("0.85"),
//	    WeightPerUnit:   decimal.NewNullDecimal(decimal.RequireFromString("0.32")),
//	}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	containerType shipment.ContainerType
	currency      shipment.Currency
	items         []CreateOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the header and every planned line.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	containerType shipment.ContainerType,
	currency shipment.Currency,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setContainerType(containerType),
		orderCommand.setCurrency(currency),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) ContainerType() shipment.ContainerType {
	return c.containerType
}

func (c CreateOrderCommand) Currency() shipment.Currency {
	return c.currency
}

// Items returns a copy of the planned lines.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	out := make([]CreateOrderItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setContainerType(containerType shipment.ContainerType) error {
	if err := containerType.Validate(); err != nil {
		return err
	}

	c.containerType = containerType
	return nil
}

func (c *CreateOrderCommand) setCurrency(currency shipment.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}

	c.currency = currency
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for i, item := range items {
		if err := item.SkuID.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if item.WeightPerUnit.Valid && item.WeightPerUnit.Decimal.IsNegative() {
			return errs.NewValueIsOutOfRangeError("weightPerUnit", item.WeightPerUnit.Decimal.String(), 0, "unbounded")
		}
	}

	c.items = make([]CreateOrderItem, len(items))
	copy(c.items, items)
	return nil
}
