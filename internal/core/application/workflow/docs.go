// Package workflow runs shipment status transitions end to end.
//
// A request is serialized per order, validated against the authoritative
// snapshot, handed back optimistically and then persisted in the background
// while the order's slot stays held. The next request for the same order
// therefore always validates against the state the previous one committed.
//
//	t, err := engine.RequestTransition(ctx, orderID, shipment.Shipped)
//	if err != nil {
//	    return err // rejected before any write
//	}
//	render(t.Optimistic())
//	committed, err := t.Wait(ctx)
//	if errors.Is(err, workflow.ErrPersistenceFailed) {
//	    // discard the optimistic copy and re-fetch the order
//	}
package workflow
