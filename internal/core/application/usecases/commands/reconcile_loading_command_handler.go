package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/loading"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/core/domain/services"
	"shipment/internal/core/ports"
	"shipment/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ReconcileLoadingCommandHandler computes and stores the actual loading record
// of an order. It takes the order's slot so a reconcile never interleaves with
// a status change of the same order. Saving the first record of a Draft or
// Confirmed order moves the order to Loaded in the same transaction.
//
// Example:
//
//	handler := NewReconcileLoadingCommandHandler(uowFactory, locker)
//	record, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, loading.ErrRecordLocked):
//	    // show the record read-only
//	case errors.Is(err, loading.ErrUnknownSku):
//	    // fix the input
//	}
type ReconcileLoadingCommandHandler struct {
	uowFactory ReconcileUoWFactory
	locker     ports.OrderLocker
	engine     services.VarianceEngine
	tracer     trace.Tracer
}

func NewReconcileLoadingCommandHandler(uowFactory ReconcileUoWFactory, locker ports.OrderLocker) ReconcileLoadingCommandHandler {
	return ReconcileLoadingCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		engine:     services.NewVarianceEngine(),
		tracer:     otel.Tracer("shipment/commands"),
	}
}

// Handle reconciles and saves atomically: on any error nothing is written.
//
// Returns:
//   - the saved record with all derived values; the order is Loaded afterwards
//   - errs.ObjectNotFoundError for an unknown order
//   - *loading.OrderNotReconcilableError for a cancelled order
//   - *loading.RecordLockedError once the order is Shipped or later, or the
//     record was locked
//   - *loading.UnknownSkuError, *loading.DivisionByZeroError from the
//     variance engine
//   - errs.ValueIsInvalidError for a SKU reported more than once
func (h *ReconcileLoadingCommandHandler) Handle(ctx context.Context, cmd ReconcileLoadingCommand) (*loading.Record, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ctx, span := h.tracer.Start(ctx, "commands.ReconcileLoading", trace.WithAttributes(
		attribute.String("order.id", cmd.OrderID().String()),
		attribute.Int("loading.entries", len(cmd.Entries())),
	))
	defer span.End()

	record, err := h.reconcile(ctx, cmd)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return record, nil
}

func (h *ReconcileLoadingCommandHandler) reconcile(ctx context.Context, cmd ReconcileLoadingCommand) (*loading.Record, error) {
	release, err := h.locker.Acquire(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	defer release()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	switch {
	case o.Status() == shipment.Cancelled:
		return nil, loading.NewOrderNotReconcilableError(o.ID().String(), o.Status().String())
	case o.Status().IsShippedOrLater():
		return nil, loading.NewRecordLockedError(o.ID().String())
	}

	records := uow.LoadingRecordRepository()
	existing, err := records.GetByOrder(ctx, o.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil && existing.IsLocked() {
		return nil, loading.NewRecordLockedError(o.ID().String())
	}

	planned := services.PlannedLinesFromOrder(o)
	skuIDs := make([]kernel.SkuID, 0, len(planned))
	for _, line := range planned {
		skuIDs = append(skuIDs, line.SkuID)
	}

	weights, err := uow.SkuRepository().WeightsFor(ctx, skuIDs)
	if err != nil {
		return nil, err
	}

	actual, err := actualEntries(planned, cmd.Entries())
	if err != nil {
		return nil, err
	}

	items, err := h.engine.Reconcile(planned, actual, weights)
	if err != nil {
		return nil, err
	}

	var record *loading.Record
	if existing == nil {
		record, err = loading.NewRecord(kernel.NewUUID(), o.ID(), items, cmd.LoadedAt())
		if err != nil {
			return nil, err
		}
		err = records.Add(ctx, record)
	} else {
		record = existing
		if err = record.Replace(items, cmd.LoadedAt()); err != nil {
			return nil, err
		}
		err = records.Update(ctx, record)
	}
	if err != nil {
		return nil, err
	}

	if err = advanceToLoaded(ctx, uow, o, cmd.LoadedAt()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}

// advanceToLoaded moves a Draft or Confirmed order to Loaded. The status
// write is version checked like any other transition.
func advanceToLoaded(ctx context.Context, uow ReconcileUoW, o *shipment.Order, at time.Time) error {
	if o.Status() == shipment.Loaded {
		return nil
	}

	if _, err := o.ChangeStatus(shipment.Loaded, at); err != nil {
		return err
	}

	return uow.OrderRepository().Update(ctx, o)
}

// actualEntries drops unreported quantities so the engine falls back to the
// plan. Every entry, reported or not, must belong to the plan and name its SKU
// once.
func actualEntries(planned []services.PlannedLine, entries []ActualLoadEntry) ([]services.ActualEntry, error) {
	inPlan := make(map[kernel.SkuID]struct{}, len(planned))
	for _, line := range planned {
		inPlan[line.SkuID] = struct{}{}
	}

	seen := make(map[kernel.SkuID]struct{}, len(entries))
	for _, entry := range entries {
		if _, dup := seen[entry.SkuID]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"actual", fmt.Errorf("sku %s is reported more than once", entry.SkuID))
		}
		seen[entry.SkuID] = struct{}{}
	}

	out := make([]services.ActualEntry, 0, len(entries))
	for _, entry := range entries {
		if !entry.ActualQuantity.Valid {
			if _, ok := inPlan[entry.SkuID]; !ok {
				return nil, loading.NewUnknownSkuError(entry.SkuID.String(), "not part of the plan")
			}
			continue
		}
		out = append(out, services.ActualEntry{
			SkuID:          entry.SkuID,
			ActualQuantity: entry.ActualQuantity.Decimal,
		})
	}
	return out, nil
}
