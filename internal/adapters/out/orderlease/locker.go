// Package orderlease extends the in-process order lock across service
// replicas with a Redis lease per order.
package orderlease

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/ports"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix    = "shipment:order-lock:"
	retryBackoff = 50 * time.Millisecond
)

// Locker first takes the local FIFO slot of an order, then a Redis lease on
// the same key. Local waiters therefore keep their arrival order and only one
// goroutine per replica competes for the lease.
type Locker struct {
	local  ports.OrderLocker
	client *redislock.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewLocker wraps local with a Redis lease of the given TTL. The TTL must
// outlast the longest persistence call.
func NewLocker(local ports.OrderLocker, rdb redis.UniversalClient, ttl time.Duration, logger *zap.Logger) *Locker {
	return &Locker{
		local:  local,
		client: redislock.New(rdb),
		ttl:    ttl,
		logger: logger,
	}
}

// Acquire waits for both the local slot and the Redis lease, retrying the
// lease until ctx is done.
func (l *Locker) Acquire(ctx context.Context, orderID kernel.UUID) (func(), error) {
	releaseLocal, err := l.local.Acquire(ctx, orderID)
	if err != nil {
		return nil, err
	}

	lease, err := l.client.Obtain(ctx, keyPrefix+orderID.String(), l.ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(retryBackoff),
	})
	if err != nil {
		releaseLocal()
		if errors.Is(err, redislock.ErrNotObtained) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("obtain order lease %s: %w", orderID, err)
	}

	return func() {
		// the lease must be released even if the caller's context is gone
		if releaseErr := lease.Release(context.Background()); releaseErr != nil &&
			!errors.Is(releaseErr, redislock.ErrLockNotHeld) {
			l.logger.Warn("failed to release order lease",
				zap.String("orderId", orderID.String()),
				zap.Error(releaseErr))
		}
		releaseLocal()
	}, nil
}

// Connect opens a Redis client and checks it answers.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return rdb, nil
}
