package queries

import (
	"errors"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/loading"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/pkg/guard"
)

var (
	ErrGetLoadingRecordQueryIsNotConstructed = errors.New(
		"GetLoadingRecordQuery must be created via NewGetLoadingRecordQuery constructor",
	)
)

// GetLoadingRecordQuery reads the actual loading record of an order with all
// derived variance values.
//
// Example:
//
//	query, _ := NewGetLoadingRecordQuery(orderID)
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // not reconciled yet
//	}
//	fmt.Println(resp.Record.Totals().VarianceValue, resp.Currency)
type GetLoadingRecordQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetLoadingRecordQuery(orderID kernel.UUID) (GetLoadingRecordQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetLoadingRecordQuery{}, err
	}
	return GetLoadingRecordQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLoadingRecordQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadingRecordQueryIsNotConstructed)
}

func (q GetLoadingRecordQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetLoadingRecordQueryResponse carries the record together with the order's
// currency, which values are expressed in.
type GetLoadingRecordQueryResponse struct {
	Currency shipment.Currency
	Record   *loading.Record
}
