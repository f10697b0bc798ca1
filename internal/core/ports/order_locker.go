package ports

import (
	"context"

	"shipment/internal/core/domain/model/kernel"
)

// OrderLocker serializes work on a single order. Requests for different
// orders never wait on each other.
type OrderLocker interface {
	// Acquire blocks until the caller holds the slot of orderID or ctx is done.
	// Waiters are served in arrival order. The returned release func must be
	// called exactly once.
	Acquire(ctx context.Context, orderID kernel.UUID) (release func(), err error)
}
