// Package ports defines the contracts between the shipment domain and the
// infrastructure that stores, locks and looks up its aggregates.
package ports

import (
	"context"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/shipment"
)

// OrderRepository defines the persistence contract for shipment orders.
type OrderRepository interface {
	// Add persists a new order together with its planned items.
	Add(ctx context.Context, aggregate *shipment.Order) error

	// Update persists a status change. The write is a compare-and-set on the
	// stored version: it only succeeds if the row still holds
	// aggregate.Version()-1, otherwise an errs.VersionIsInvalidError is returned
	// and nothing is written.
	Update(ctx context.Context, aggregate *shipment.Order) error

	// Get retrieves an order with its items.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Order, error)
}
