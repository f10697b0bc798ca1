package commands

import (
	"errors"
	"fmt"
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrReconcileLoadingCommandIsNotConstructed = errors.New(
	"ReconcileLoadingCommand must be created via NewReconcileLoadingCommand constructor",
)

// ActualLoadEntry is what the warehouse reported for one SKU. An invalid
// ActualQuantity means "not reported" and defaults to the planned quantity.
type ActualLoadEntry struct {
	SkuID          kernel.SkuID
	ActualQuantity decimal.NullDecimal
}

// ReconcileLoadingCommand records the actual load of an order.
//
// Example:
//
//	cmd, err := NewReconcileLoadingCommand(orderID, []ActualLoadEntry{
//	    {SkuID: kernel.MustNewSkuID("SKU1"), ActualQuantity: decimal.NewNullDecimal(decimal.NewFromInt(95))},
//	    {SkuID: kernel.MustNewSkuID("SKU2")}, // loaded as planned
//	}, time.Now())
type ReconcileLoadingCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	entries  []ActualLoadEntry
	loadedAt time.Time

	guard guard.ConstructorGuard
}

func NewReconcileLoadingCommand(
	orderID kernel.UUID,
	entries []ActualLoadEntry,
	loadedAt time.Time,
) (ReconcileLoadingCommand, error) {
	command := ReconcileLoadingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setEntries(entries),
		command.setLoadedAt(loadedAt),
	); err != nil {
		return ReconcileLoadingCommand{}, err
	}

	return command, nil
}

func (c ReconcileLoadingCommand) Validate() error {
	return c.guard.Validate(ErrReconcileLoadingCommandIsNotConstructed)
}

func (c ReconcileLoadingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Entries returns a copy of the reported lines.
func (c ReconcileLoadingCommand) Entries() []ActualLoadEntry {
	out := make([]ActualLoadEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c ReconcileLoadingCommand) LoadedAt() time.Time {
	return c.loadedAt
}

func (c *ReconcileLoadingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

// An empty entry list is valid: everything was loaded as planned.
func (c *ReconcileLoadingCommand) setEntries(entries []ActualLoadEntry) error {
	for i, entry := range entries {
		if err := entry.SkuID.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}

	c.entries = make([]ActualLoadEntry, len(entries))
	copy(c.entries, entries)
	return nil
}

func (c *ReconcileLoadingCommand) setLoadedAt(loadedAt time.Time) error {
	if loadedAt.IsZero() {
		return errs.NewValueIsRequiredError("loadedAt")
	}

	c.loadedAt = loadedAt
	return nil
}
