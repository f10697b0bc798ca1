// Package locking provides the in-process per-order lock used to serialize
// status changes. Waiters on the same order are served first come, first
// served; different orders never contend.
package locking

import (
	"context"
	"sync"

	"shipment/internal/core/domain/model/kernel"
)

type slot struct {
	held    bool
	waiters []chan struct{}
}

// KeyedLocker hands out one exclusive slot per order ID. Slots exist only
// while held or awaited, so memory is bounded by the number of orders in
// flight.
type KeyedLocker struct {
	mu    sync.Mutex
	slots map[kernel.UUID]*slot
}

func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{slots: make(map[kernel.UUID]*slot)}
}

// Acquire blocks until orderID's slot is free or ctx is done.
func (l *KeyedLocker) Acquire(ctx context.Context, orderID kernel.UUID) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	s, ok := l.slots[orderID]
	if !ok {
		s = &slot{}
		l.slots[orderID] = s
	}
	if !s.held {
		s.held = true
		l.mu.Unlock()
		return l.releaseFunc(orderID), nil
	}

	turn := make(chan struct{})
	s.waiters = append(s.waiters, turn)
	l.mu.Unlock()

	select {
	case <-turn:
		return l.releaseFunc(orderID), nil
	case <-ctx.Done():
		l.mu.Lock()
		removed := s.remove(turn)
		l.mu.Unlock()
		if !removed {
			// the slot was handed over while we were giving up
			l.release(orderID)
		}
		return nil, ctx.Err()
	}
}

// Len returns the number of orders currently held or awaited.
func (l *KeyedLocker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}

func (l *KeyedLocker) releaseFunc(orderID kernel.UUID) func() {
	var once sync.Once
	return func() {
		once.Do(func() { l.release(orderID) })
	}
}

func (l *KeyedLocker) release(orderID kernel.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[orderID]
	if !ok {
		return
	}

	if len(s.waiters) == 0 {
		delete(l.slots, orderID)
		return
	}

	next := s.waiters[0]
	s.waiters = s.waiters[1:]
	close(next)
}

func (s *slot) remove(turn chan struct{}) bool {
	for i, w := range s.waiters {
		if w == turn {
			s.waiters = append(s.waiters[:i], s.waiters[i+1:]...)
			return true
		}
	}
	return false
}
