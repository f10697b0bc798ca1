package ports

import (
	"context"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/loading"
)

// LoadingRecordRepository defines the persistence contract for actual loading
// records. There is at most one record per order.
type LoadingRecordRepository interface {
	// Add persists the first record of an order.
	// Returns errs.ValueIsInvalidError if the order already has one.
	Add(ctx context.Context, record *loading.Record) error

	// Update replaces the items and lock flag of an existing record.
	Update(ctx context.Context, record *loading.Record) error

	// GetByOrder retrieves the record of an order.
	// Returns errs.ObjectNotFoundError if the order was never reconciled.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*loading.Record, error)

	// LockByOrder marks the record of an order as locked. Orders without a
	// record are left alone.
	LockByOrder(ctx context.Context, orderID kernel.UUID) error

	// LockAllShipped locks every unlocked record whose order is Shipped or
	// later and returns the number of records locked.
	LockAllShipped(ctx context.Context) (int64, error)
}
