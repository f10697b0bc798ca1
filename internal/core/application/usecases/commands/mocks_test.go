package commands_test

import (
	"context"

	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/loading"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *shipment.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *shipment.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Order), args.Error(1)
}

type MockLoadingRecordRepository struct{ mock.Mock }

func (m *MockLoadingRecordRepository) Add(ctx context.Context, r *loading.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockLoadingRecordRepository) Update(ctx context.Context, r *loading.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockLoadingRecordRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*loading.Record, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loading.Record), args.Error(1)
}

func (m *MockLoadingRecordRepository) LockByOrder(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockLoadingRecordRepository) LockAllShipped(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockSkuRepository struct{ mock.Mock }

func (m *MockSkuRepository) Upsert(ctx context.Context, skuID kernel.SkuID, description string, weight decimal.Decimal) error {
	args := m.Called(ctx, skuID, description, weight)
	return args.Error(0)
}

func (m *MockSkuRepository) WeightsFor(ctx context.Context, skuIDs []kernel.SkuID) (map[kernel.SkuID]decimal.Decimal, error) {
	args := m.Called(ctx, skuIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.SkuID]decimal.Decimal), args.Error(1)
}

// MockUoW satisfies every unit of work shape the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) LoadingRecordRepository() ports.LoadingRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadingRecordRepository)
}

func (m *MockUoW) SkuRepository() ports.SkuRepository {
	args := m.Called()
	return args.Get(0).(ports.SkuRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockReconcileUoWFactory struct{ mock.Mock }

func (m *MockReconcileUoWFactory) Create() commands.ReconcileUoW {
	args := m.Called()
	return args.Get(0).(commands.ReconcileUoW)
}

type MockLoadingRecordUoWFactory struct{ mock.Mock }

func (m *MockLoadingRecordUoWFactory) Create() commands.LoadingRecordUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadingRecordUoW)
}

type MockOrderLocker struct{ mock.Mock }

func (m *MockOrderLocker) Acquire(ctx context.Context, orderID kernel.UUID) (func(), error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func()), args.Error(1)
}

type MockTransitionRequester struct{ mock.Mock }

func (m *MockTransitionRequester) Transition(
	ctx context.Context,
	orderID kernel.UUID,
	target shipment.Status,
) (*shipment.Order, error) {
	args := m.Called(ctx, orderID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Order), args.Error(1)
}
