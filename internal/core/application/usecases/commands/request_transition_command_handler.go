package commands

import (
	"context"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/shipment"
)

// TransitionRequester is the part of the workflow engine the handler drives.
type TransitionRequester interface {
	Transition(ctx context.Context, orderID kernel.UUID, target shipment.Status) (*shipment.Order, error)
}

// RequestTransitionCommandHandler runs a status change through the workflow
// engine and waits for the store to acknowledge it.
//
// Example:
//
//	handler := NewRequestTransitionCommandHandler(engine)
//	order, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, workflow.ErrPersistenceFailed) {
//	    // discard the optimistic view and re-fetch the order
//	}
type RequestTransitionCommandHandler struct {
	engine TransitionRequester
}

func NewRequestTransitionCommandHandler(engine TransitionRequester) RequestTransitionCommandHandler {
	return RequestTransitionCommandHandler{engine: engine}
}

// Handle returns the committed order. Rejections come back as
// *shipment.TransitionError and leave the order untouched.
func (h *RequestTransitionCommandHandler) Handle(ctx context.Context, cmd RequestTransitionCommand) (*shipment.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.engine.Transition(ctx, cmd.OrderID(), cmd.Target())
}
