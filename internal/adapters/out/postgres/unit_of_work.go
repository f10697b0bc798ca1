// Package postgres provides the GORM-based Unit of Work over the shipment
// repositories.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	order, err := uow.OrderRepository().Get(ctx, orderID)
//	if err != nil {
//	    return err
//	}
//	if _, err := order.ChangeStatus(shipment.Shipped, time.Now()); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Update(ctx, order); err != nil {
//	    return err
//	}
//	if err := uow.LoadingRecordRepository().LockByOrder(ctx, orderID); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns at most one transaction; goroutines must not
// share an instance.
package postgres

import (
	"context"
	"fmt"

	"shipment/internal/adapters/out/postgres/loadingrepo"
	"shipment/internal/adapters/out/postgres/orderrepo"
	"shipment/internal/adapters/out/postgres/skurepo"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory hands out a fresh unit of work per business operation.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGormUnitOfWorkFactory(db *gorm.DB, logger *zap.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, logger: logger}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the order,
// loading record and SKU repositories. Aggregates written inside the
// transaction are logged once it commits.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	logger            *zap.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. The unit of work can begin a new one
// afterwards.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err == nil {
		uow.logCommitted()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// Rollback discards the transaction. It returns gorm.ErrInvalidTransaction when
// nothing is open, which makes it safe to defer after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) LoadingRecordRepository() ports.LoadingRecordRepository {
	return loadingrepo.NewGormLoadingRecordRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SkuRepository() ports.SkuRepository {
	return skurepo.NewGormSkuRepository(uow.conn())
}

// TrackAggregate registers an aggregate written by one of the repositories.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) logCommitted() {
	if len(uow.trackedAggregates) == 0 {
		return
	}

	ids := make([]string, 0, len(uow.trackedAggregates))
	kinds := make([]string, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		ids = append(ids, tracked.ID.String())
		kinds = append(kinds, fmt.Sprintf("%T", tracked.Aggregate))
	}

	uow.logger.Debug("unit of work committed",
		zap.Int("writes", len(ids)),
		zap.Strings("aggregateIds", ids),
		zap.Strings("aggregateTypes", kinds))
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
