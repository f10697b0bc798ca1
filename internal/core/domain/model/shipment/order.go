package shipment

import (
	"errors"
	"fmt"
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when using an Order that was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreRequired is returned for an order without planned lines.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// initialVersion is the store version of a freshly created order.
const initialVersion int64 = 1

// Order is the shipment order aggregate: a container-sized purchase order moving
// through the status workflow.
//
// Invariants:
//   - status is always a node of the status graph
//   - status only changes through ChangeStatus, which applies the graph rules
//   - every SKU appears at most once in items
//   - version grows by exactly one per committed status change
//
// The first arrival at the destination port is recorded as the demurrage start
// and kept even if the order is later moved back.
type Order struct {
	id             kernel.UUID
	status         Status
	containerType  ContainerType
	currency       Currency
	items          []*OrderItem
	demurrageStart *time.Time
	version        int64
	guard          guard.ConstructorGuard
}

// NewOrder creates a Draft order.
//
// Parameters:
//   - id: order identifier
//   - containerType: 20FT, 40FT or 40HC
//   - currency: pricing currency
//   - items: planned lines, at least one, unique by SKU
//
// Returns:
//   - *Order in Draft with version 1
//   - joined validation errors otherwise
//
// Example:
//
//	item, _ := shipment.NewOrderItem(kernel.MustNewSkuID("SKU1"), decimal.NewFromInt(100), decimal.NewFromInt(5))
//	o, err := shipment.NewOrder(kernel.NewUUID(), shipment.Container40HC, shipment.CurrencyUSD, []*shipment.OrderItem{item})
func NewOrder(id kernel.UUID, containerType ContainerType, currency Currency, items []*OrderItem) (*Order, error) {
	return RestoreOrder(id, Draft, containerType, currency, items, nil, initialVersion)
}

// RestoreOrder reconstructs an Order from the store, including its current
// status, demurrage start and version.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	containerType ContainerType,
	currency Currency,
	items []*OrderItem,
	demurrageStart *time.Time,
	version int64,
) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
		o.setContainerType(containerType),
		o.setCurrency(currency),
		o.setItems(items),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	if demurrageStart != nil {
		t := *demurrageStart
		o.demurrageStart = &t
	}

	return o, nil
}

// Validate rejects orders not created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current stage.
func (o *Order) Status() Status {
	return o.status
}

// ContainerType returns the container size class.
func (o *Order) ContainerType() ContainerType {
	return o.containerType
}

// Currency returns the pricing currency.
func (o *Order) Currency() Currency {
	return o.currency
}

// Items returns a copy of the planned lines in their original order.
func (o *Order) Items() []*OrderItem {
	out := make([]*OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

// DemurrageStart returns the time of the first arrival, or nil.
func (o *Order) DemurrageStart() *time.Time {
	if o.demurrageStart == nil {
		return nil
	}
	t := *o.demurrageStart
	return &t
}

// Version returns the optimistic-concurrency version.
func (o *Order) Version() int64 {
	return o.version
}

// Clone returns an independent copy. Items are immutable and shared.
func (o *Order) Clone() *Order {
	c := *o
	c.items = o.Items()
	c.demurrageStart = o.DemurrageStart()
	return &c
}

// ChangeStatus moves the order to target according to the status graph.
//
// Parameters:
//   - target: requested stage
//   - at: time of the change, used as demurrage start on the first arrival
//
// Returns:
//   - the graph decision; a no-op decision leaves the order untouched
//   - *TransitionError when the graph rejects the move
//
// Example:
//
//	decision, err := o.ChangeStatus(shipment.Shipped, time.Now())
//	if err != nil {
//	    return err // errors.Is(err, shipment.ErrInvalidTransition)
//	}
func (o *Order) ChangeStatus(target Status, at time.Time) (Decision, error) {
	decision := Workflow().CanTransition(o.status, target)
	if err := decision.Err(o.status, target); err != nil {
		return decision, err
	}

	if decision.Reason == ReasonNoOp {
		return decision, nil
	}

	o.status = target
	o.version++

	if target == Arrived && o.demurrageStart == nil {
		t := at.UTC()
		o.demurrageStart = &t
	}

	return decision, nil
}

// Item returns the planned line for skuID, if any.
func (o *Order) Item(skuID kernel.SkuID) (*OrderItem, bool) {
	for _, item := range o.items {
		if item.SkuID().IsEqual(skuID) {
			return item, true
		}
	}
	return nil, false
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setContainerType(containerType ContainerType) error {
	if err := containerType.Validate(); err != nil {
		return err
	}
	o.containerType = containerType
	return nil
}

func (o *Order) setCurrency(currency Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	o.currency = currency
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.SkuID().String()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("sku %s is planned more than once", item.SkuID()),
			)
		}
		seen[item.SkuID().String()] = struct{}{}
	}

	o.items = make([]*OrderItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setVersion(version int64) error {
	if version < initialVersion {
		return errs.NewValueIsOutOfRangeError("version", version, initialVersion, "unbounded")
	}
	o.version = version
	return nil
}
