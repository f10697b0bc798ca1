package workflow

import (
	"context"
	"errors"
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/core/domain/services"
	"shipment/internal/core/ports"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const defaultPersistTimeout = 10 * time.Second

// Engine orchestrates status transitions. It keeps no order state of its
// own; the per-order slot lives in the OrderLocker and the truth in the store.
type Engine struct {
	locker         ports.OrderLocker
	uowFactory     ports.UnitOfWorkFactory
	validator      services.TransitionValidator
	logger         *zap.Logger
	tracer         trace.Tracer
	persistTimeout time.Duration
	now            func() time.Time

	// beforeIssue runs in the persisting goroutine right before the cancel
	// window closes.
	beforeIssue func()
}

// Option customizes an Engine.
type Option func(*Engine)

// WithPersistTimeout bounds each background store write.
func WithPersistTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.persistTimeout = d
		}
	}
}

// WithClock replaces time.Now, used for the demurrage start.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(
	locker ports.OrderLocker,
	uowFactory ports.UnitOfWorkFactory,
	logger *zap.Logger,
	opts ...Option,
) *Engine {
	e := &Engine{
		locker:         locker,
		uowFactory:     uowFactory,
		validator:      services.NewTransitionValidator(),
		logger:         logger,
		tracer:         otel.Tracer("shipment/workflow"),
		persistTimeout: defaultPersistTimeout,
		now:            time.Now,
		beforeIssue:    func() {},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CanTransition is the pure pre-flight check, usable before a request.
func (e *Engine) CanTransition(current, target string) (shipment.Decision, error) {
	return e.validator.CanTransition(current, target)
}

// RequestTransition moves an order to target.
//
// The call waits for the order's slot, reads the authoritative snapshot and
// validates against it. Rejections return immediately and nothing is written.
// An accepted change returns a Transition whose optimistic copy is ready at
// once while the store write continues in the background, still holding the
// slot. A self-transition returns an already resolved Transition.
//
// Returns:
//   - errs.ObjectNotFoundError if the order does not exist
//   - *shipment.TransitionError for unknown states and rejected moves
//   - ctx.Err() if ctx ends while waiting for the slot
func (e *Engine) RequestTransition(ctx context.Context, orderID kernel.UUID, target shipment.Status) (*Transition, error) {
	ctx, span := e.tracer.Start(ctx, "workflow.RequestTransition", trace.WithAttributes(
		attribute.String("order.id", orderID.String()),
		attribute.String("order.target_status", target.String()),
	))
	defer span.End()

	release, err := e.locker.Acquire(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	snapshot, err := e.uowFactory.Create().OrderRepository().Get(ctx, orderID)
	if err != nil {
		release()
		span.RecordError(err)
		return nil, err
	}

	decision, err := e.validator.Check(snapshot.Status(), target)
	span.SetAttributes(attribute.String("transition.reason", string(decision.Reason)))
	if err != nil {
		release()
		span.SetStatus(codes.Error, string(decision.Reason))
		e.logger.Info("transition rejected",
			zap.String("orderId", orderID.String()),
			zap.String("from", snapshot.Status().String()),
			zap.String("to", target.String()),
			zap.String("reason", string(decision.Reason)))
		return nil, err
	}

	if decision.Reason == shipment.ReasonNoOp {
		release()
		return resolvedTransition(snapshot, decision), nil
	}

	optimistic := snapshot.Clone()
	if _, err := optimistic.ChangeStatus(target, e.now()); err != nil {
		release()
		return nil, err
	}

	t := newTransition(snapshot, optimistic, decision)
	go e.persist(context.WithoutCancel(ctx), t, release)

	return t, nil
}

// Transition runs RequestTransition and waits for the store outcome.
func (e *Engine) Transition(ctx context.Context, orderID kernel.UUID, target shipment.Status) (*shipment.Order, error) {
	t, err := e.RequestTransition(ctx, orderID, target)
	if err != nil {
		return nil, err
	}
	return t.Wait(ctx)
}

func (e *Engine) persist(ctx context.Context, t *Transition, release func()) {
	defer release()

	e.beforeIssue()
	if !t.issue() {
		e.logger.Info("transition cancelled before write",
			zap.String("orderId", t.orderID.String()),
			zap.String("to", t.to.String()))
		t.resolve(nil, ErrTransitionCancelled)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, e.persistTimeout)
	defer cancel()

	ctx, span := e.tracer.Start(ctx, "workflow.persist", trace.WithAttributes(
		attribute.String("order.id", t.orderID.String()),
		attribute.String("order.from_status", t.from.String()),
		attribute.String("order.to_status", t.to.String()),
	))
	defer span.End()

	committed, err := e.commit(ctx, t.optimistic.Clone())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, ReasonPersistenceFailed)
		e.logger.Warn("transition not persisted",
			zap.String("orderId", t.orderID.String()),
			zap.String("from", t.from.String()),
			zap.String("to", t.to.String()),
			zap.String("reason", ReasonPersistenceFailed),
			zap.Error(err))
		t.resolve(nil, NewPersistenceFailedError(t.orderID.String(), err))
		return
	}

	e.logger.Info("transition committed",
		zap.String("orderId", t.orderID.String()),
		zap.String("from", t.from.String()),
		zap.String("to", t.to.String()),
		zap.String("reason", string(t.decision.Reason)),
		zap.Int64("version", committed.Version()))
	t.resolve(committed, nil)
}

// commit writes the status change and, for Shipped or later, locks the
// loading record in the same transaction.
func (e *Engine) commit(ctx context.Context, order *shipment.Order) (*shipment.Order, error) {
	uow := e.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return nil, err
	}

	if order.Status().IsShippedOrLater() {
		if err := uow.LoadingRecordRepository().LockByOrder(ctx, order.ID()); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, errors.Join(errors.New("commit status change"), err)
	}

	return order, nil
}
