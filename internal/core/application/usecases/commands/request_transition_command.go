package commands

import (
	"errors"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/pkg/guard"
)

var ErrRequestTransitionCommandIsNotConstructed = errors.New(
	"RequestTransitionCommand must be created via NewRequestTransitionCommand constructor",
)

// RequestTransitionCommand asks to move an order to another status column.
// The target arrives by its wire name, e.g. "In Transit".
//
// Example:
//
//	cmd, err := NewRequestTransitionCommand(orderID, "Shipped")
//	if err != nil {
//	    return err // errors.Is(err, shipment.ErrUnknownState)
//	}
type RequestTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  shipment.Status

	guard guard.ConstructorGuard
}

func NewRequestTransitionCommand(orderID kernel.UUID, target string) (RequestTransitionCommand, error) {
	command := RequestTransitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
	); err != nil {
		return RequestTransitionCommand{}, err
	}

	return command, nil
}

func (c RequestTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestTransitionCommandIsNotConstructed)
}

func (c RequestTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RequestTransitionCommand) Target() shipment.Status {
	return c.target
}

func (c *RequestTransitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestTransitionCommand) setTarget(target string) error {
	status, err := shipment.ParseStatus(target)
	if err != nil {
		return err
	}

	c.target = status
	return nil
}
