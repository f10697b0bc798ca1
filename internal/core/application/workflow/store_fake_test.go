package workflow_test

import (
	"context"
	"errors"
	"sync"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/loading"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/core/ports"
	"shipment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// memoryStore is an in-memory order store with the same version CAS as the
// database adapter. Writes inside a transaction become visible on commit.
type memoryStore struct {
	mu       sync.Mutex
	orders   map[kernel.UUID]*shipment.Order
	locked   map[kernel.UUID]bool
	failWith error
	writes   int
	onUpdate func(o *shipment.Order)
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		orders: make(map[kernel.UUID]*shipment.Order),
		locked: make(map[kernel.UUID]bool),
	}
}

func (s *memoryStore) put(o *shipment.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID()] = o.Clone()
}

func (s *memoryStore) putRecord(orderID kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked[orderID] = false
}

func (s *memoryStore) get(id kernel.UUID) *shipment.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id].Clone()
}

func (s *memoryStore) isLocked(orderID kernel.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked[orderID]
}

func (s *memoryStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *memoryStore) failUpdates(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

func (s *memoryStore) Create() ports.UnitOfWork {
	return &memoryUnitOfWork{store: s}
}

type memoryUnitOfWork struct {
	store   *memoryStore
	inTx    bool
	pending []func()
}

func (u *memoryUnitOfWork) Begin(context.Context) error {
	u.inTx = true
	return nil
}

func (u *memoryUnitOfWork) Commit(context.Context) error {
	if !u.inTx {
		return errors.New("no transaction")
	}
	u.store.mu.Lock()
	for _, apply := range u.pending {
		apply()
	}
	u.store.mu.Unlock()
	u.pending = nil
	u.inTx = false
	return nil
}

func (u *memoryUnitOfWork) Rollback(context.Context) error {
	if !u.inTx {
		return errors.New("no transaction")
	}
	u.pending = nil
	u.inTx = false
	return nil
}

func (u *memoryUnitOfWork) OrderRepository() ports.OrderRepository {
	return memoryOrders{uow: u}
}

func (u *memoryUnitOfWork) LoadingRecordRepository() ports.LoadingRecordRepository {
	return memoryRecords{uow: u}
}

func (u *memoryUnitOfWork) SkuRepository() ports.SkuRepository {
	return nil
}

// enqueue runs apply with the store lock held, now or on commit.
func (u *memoryUnitOfWork) enqueue(apply func()) {
	if u.inTx {
		u.pending = append(u.pending, apply)
		return
	}
	u.store.mu.Lock()
	apply()
	u.store.mu.Unlock()
}

type memoryOrders struct {
	uow *memoryUnitOfWork
}

func (r memoryOrders) Add(_ context.Context, o *shipment.Order) error {
	c := o.Clone()
	r.uow.enqueue(func() { r.uow.store.orders[c.ID()] = c })
	return nil
}

func (r memoryOrders) Update(_ context.Context, o *shipment.Order) error {
	s := r.uow.store
	s.mu.Lock()
	hook := s.onUpdate
	s.mu.Unlock()
	if hook != nil {
		hook(o)
	}

	s.mu.Lock()
	failWith := s.failWith
	stored, ok := s.orders[o.ID()]
	s.mu.Unlock()

	if failWith != nil {
		return failWith
	}
	if !ok {
		return errs.NewObjectNotFoundError("order", o.ID())
	}
	if stored.Version() != o.Version()-1 {
		return errs.NewVersionIsInvalidError("order")
	}

	c := o.Clone()
	r.uow.enqueue(func() {
		s.orders[c.ID()] = c
		s.writes++
	})
	return nil
}

func (r memoryOrders) Get(_ context.Context, id kernel.UUID) (*shipment.Order, error) {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o.Clone(), nil
}

type memoryRecords struct {
	uow *memoryUnitOfWork
}

func (r memoryRecords) Add(context.Context, *loading.Record) error {
	return errors.New("not used")
}

func (r memoryRecords) Update(context.Context, *loading.Record) error {
	return errors.New("not used")
}

func (r memoryRecords) GetByOrder(context.Context, kernel.UUID) (*loading.Record, error) {
	return nil, errors.New("not used")
}

func (r memoryRecords) LockByOrder(_ context.Context, orderID kernel.UUID) error {
	s := r.uow.store
	r.uow.enqueue(func() {
		if _, ok := s.locked[orderID]; ok {
			s.locked[orderID] = true
		}
	})
	return nil
}

func (r memoryRecords) LockAllShipped(context.Context) (int64, error) {
	return 0, errors.New("not used")
}

func orderIn(status shipment.Status) *shipment.Order {
	item, err := shipment.NewOrderItem(kernel.MustNewSkuID("SKU1"), decimal.NewFromInt(100), decimal.NewFromInt(5))
	if err != nil {
		panic(err)
	}
	o, err := shipment.RestoreOrder(
		kernel.NewUUID(), status, shipment.Container40HC, shipment.CurrencyUSD,
		[]*shipment.OrderItem{item}, nil, 1,
	)
	if err != nil {
		panic(err)
	}
	return o
}
