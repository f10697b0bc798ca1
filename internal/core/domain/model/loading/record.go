package loading

import (
	"errors"
	"fmt"
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrRecordIsNotConstructed is returned when using a zero-value Record.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

	// ErrLoadedItemsAreRequired is returned for a record without lines.
	ErrLoadedItemsAreRequired = errs.NewValueIsRequiredError("loaded items")
)

// Totals are the exact sums of the per-item fields of a record. They are
// recomputed from the items on every call and never rounded.
type Totals struct {
	PlannedQuantity  decimal.Decimal
	ActualQuantity   decimal.Decimal
	VarianceQuantity decimal.Decimal
	PlannedWeight    decimal.Decimal
	ActualWeight     decimal.Decimal
	VarianceWeight   decimal.Decimal
	PlannedValue     decimal.Decimal
	ActualValue      decimal.Decimal
	VarianceValue    decimal.Decimal
}

// Record is the actual loading record of a shipment order, created once on the
// first reconciliation and replaced by later ones until it is locked.
//
// Business rules:
//   - one record per order; orderID is a lookup reference, not a back-pointer
//   - items are unique by SKU and kept in the order's planned sequence
//   - once locked (the order reached Shipped or later) every mutation fails
//     with a *RecordLockedError and leaves the record unchanged
//
// Example:
//
//	record, err := loading.NewRecord(kernel.NewUUID(), orderID, items, time.Now())
//	if err != nil {
//	    return err
//	}
//	totals := record.Totals()
type Record struct {
	id        kernel.UUID
	orderID   kernel.UUID
	items     []*LoadedItem
	isLocked  bool
	loadedAt  time.Time
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewRecord creates an unlocked record.
func NewRecord(id, orderID kernel.UUID, items []*LoadedItem, loadedAt time.Time) (*Record, error) {
	return RestoreRecord(id, orderID, items, false, loadedAt, loadedAt)
}

// RestoreRecord reconstructs a Record from the store.
func RestoreRecord(
	id, orderID kernel.UUID,
	items []*LoadedItem,
	isLocked bool,
	loadedAt, createdAt time.Time,
) (*Record, error) {
	r := &Record{
		guard:     guard.NewConstructorGuard(),
		isLocked:  isLocked,
		loadedAt:  loadedAt.UTC(),
		createdAt: createdAt.UTC(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setItems(items),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate rejects records not created through a constructor.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

func (r *Record) ID() kernel.UUID      { return r.id }
func (r *Record) OrderID() kernel.UUID { return r.orderID }
func (r *Record) IsLocked() bool       { return r.isLocked }
func (r *Record) LoadedAt() time.Time  { return r.loadedAt }
func (r *Record) CreatedAt() time.Time { return r.createdAt }

// Items returns a copy of the loaded lines.
func (r *Record) Items() []*LoadedItem {
	out := make([]*LoadedItem, len(r.items))
	copy(out, r.items)
	return out
}

// Totals sums every per-item field.
func (r *Record) Totals() Totals {
	t := Totals{
		PlannedQuantity:  decimal.Zero,
		ActualQuantity:   decimal.Zero,
		VarianceQuantity: decimal.Zero,
		PlannedWeight:    decimal.Zero,
		ActualWeight:     decimal.Zero,
		VarianceWeight:   decimal.Zero,
		PlannedValue:     decimal.Zero,
		ActualValue:      decimal.Zero,
		VarianceValue:    decimal.Zero,
	}

	for _, item := range r.items {
		t.PlannedQuantity = t.PlannedQuantity.Add(item.PlannedQuantity())
		t.ActualQuantity = t.ActualQuantity.Add(item.ActualQuantity())
		t.VarianceQuantity = t.VarianceQuantity.Add(item.VarianceQuantity())
		t.PlannedWeight = t.PlannedWeight.Add(item.PlannedWeight())
		t.ActualWeight = t.ActualWeight.Add(item.ActualWeight())
		t.VarianceWeight = t.VarianceWeight.Add(item.VarianceWeight())
		t.PlannedValue = t.PlannedValue.Add(item.PlannedValue())
		t.ActualValue = t.ActualValue.Add(item.ActualValue())
		t.VarianceValue = t.VarianceValue.Add(item.VarianceValue())
	}

	return t
}

// Replace swaps in the lines of a newer reconciliation.
//
// Returns:
//   - *RecordLockedError if the record is locked; nothing changes
//   - validation errors for invalid or duplicate items; nothing changes
func (r *Record) Replace(items []*LoadedItem, loadedAt time.Time) error {
	if r.isLocked {
		return NewRecordLockedError(r.orderID.String())
	}
	if err := r.setItems(items); err != nil {
		return err
	}
	r.loadedAt = loadedAt.UTC()
	return nil
}

// Lock freezes the record. Locking twice is a no-op.
func (r *Record) Lock() {
	r.isLocked = true
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Record) setItems(items []*LoadedItem) error {
	if len(items) == 0 {
		return ErrLoadedItemsAreRequired
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		key := item.SkuID().String()
		if _, dup := seen[key]; dup {
			return errs.NewValueIsInvalidErrorWithCause("loaded items", fmt.Errorf("sku %s appears more than once", key))
		}
		seen[key] = struct{}{}
	}

	r.items = make([]*LoadedItem, len(items))
	copy(r.items, items)
	return nil
}
