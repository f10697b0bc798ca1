package workflow

import (
	"context"
	"sync/atomic"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/shipment"
)

const (
	statePending int32 = iota
	stateIssued
	stateCancelled
)

// Transition is the handle of one accepted status change.
//
// The optimistic copy is available immediately; the authoritative outcome
// arrives once the store acknowledged or rejected the write.
type Transition struct {
	orderID    kernel.UUID
	from       shipment.Status
	to         shipment.Status
	decision   shipment.Decision
	optimistic *shipment.Order

	state  atomic.Int32
	done   chan struct{}
	result *shipment.Order
	err    error
}

func newTransition(snapshot *shipment.Order, optimistic *shipment.Order, decision shipment.Decision) *Transition {
	return &Transition{
		orderID:    snapshot.ID(),
		from:       snapshot.Status(),
		to:         optimistic.Status(),
		decision:   decision,
		optimistic: optimistic,
		done:       make(chan struct{}),
	}
}

// resolvedTransition is returned for no-op requests: nothing is written and
// the outcome is known up front.
func resolvedTransition(snapshot *shipment.Order, decision shipment.Decision) *Transition {
	t := newTransition(snapshot, snapshot, decision)
	t.state.Store(stateIssued)
	t.result = snapshot
	close(t.done)
	return t
}

func (t *Transition) OrderID() kernel.UUID        { return t.orderID }
func (t *Transition) From() shipment.Status       { return t.from }
func (t *Transition) To() shipment.Status         { return t.to }
func (t *Transition) Decision() shipment.Decision { return t.decision }

// Optimistic returns a copy of the order as it will look once committed. It
// is never ground truth.
func (t *Transition) Optimistic() *shipment.Order {
	return t.optimistic.Clone()
}

// Done is closed when the outcome is known.
func (t *Transition) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the store outcome is known or ctx is done. Giving up on
// the wait does not cancel the transition.
//
// Returns:
//   - the committed order
//   - *PersistenceFailedError when the store rejected or failed the write
//   - ErrTransitionCancelled when Cancel won the race against the write
func (t *Transition) Wait(ctx context.Context) (*shipment.Order, error) {
	select {
	case <-t.done:
		if t.err != nil {
			return nil, t.err
		}
		return t.result.Clone(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Cancel withdraws the transition if its store write has not been issued yet
// and reports whether it did. Once issued the write runs to completion.
func (t *Transition) Cancel() bool {
	return t.state.CompareAndSwap(statePending, stateCancelled)
}

// issue marks the store write as started. It fails if Cancel came first.
func (t *Transition) issue() bool {
	return t.state.CompareAndSwap(statePending, stateIssued)
}

func (t *Transition) resolve(result *shipment.Order, err error) {
	t.result = result
	t.err = err
	close(t.done)
}
