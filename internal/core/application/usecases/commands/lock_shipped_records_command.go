package commands

import (
	"errors"

	"shipment/internal/pkg/guard"
)

// LockShippedRecordsCommand locks every open loading record whose order is
// already Shipped or later. It catches status changes made by other writers
// of the store.
//
// Example:
//
//	cmd := NewLockShippedRecordsCommand()
//	locked, err := handler.Handle(ctx, cmd)
type LockShippedRecordsCommand struct {
	guard guard.ConstructorGuard
}

var ErrLockShippedRecordsCommandIsNotConstructed = errors.New(
	"LockShippedRecordsCommand must be created via NewLockShippedRecordsCommand constructor",
)

func NewLockShippedRecordsCommand() LockShippedRecordsCommand {
	return LockShippedRecordsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *LockShippedRecordsCommand) Validate() error {
	return c.guard.Validate(ErrLockShippedRecordsCommandIsNotConstructed)
}
