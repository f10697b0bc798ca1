// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shipment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LoadingRecordRepoFactory provides access to the loading record repository
	// within a transaction.
	LoadingRecordRepoFactory interface {
		LoadingRecordRepository() ports.LoadingRecordRepository
	}

	// SkuRepoFactory provides access to the SKU master within a transaction.
	SkuRepoFactory interface {
		SkuRepository() ports.SkuRepository
	}

	// OrderUoW manages transactions for order creation, which also seeds the
	// SKU master.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		SkuRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LoadingRecordUoW manages transactions touching loading records only.
	LoadingRecordUoW interface {
		TxManager
		LoadingRecordRepoFactory
	}

	// LoadingRecordUoWFactory creates new loading record unit of work instances.
	LoadingRecordUoWFactory interface {
		Create() LoadingRecordUoW
	}

	// ReconcileUoW spans everything a reconciliation reads and writes.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   order, err := uow.OrderRepository().Get(ctx, orderID)
	//   weights, err := uow.SkuRepository().WeightsFor(ctx, skuIDs)
	//   // ... reconcile, then Add or Update the record
	//
	//   err = uow.Commit(ctx)
	ReconcileUoW interface {
		TxManager
		OrderRepoFactory
		LoadingRecordRepoFactory
		SkuRepoFactory
	}

	// ReconcileUoWFactory creates new reconciliation unit of work instances.
	ReconcileUoWFactory interface {
		Create() ReconcileUoW
	}
)
