package queries

import (
	"errors"
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery reads the authoritative state of one order. Clients use it to
// re-sync after a failed or cancelled transition.
type GetOrderQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

type GetOrderQueryResponse struct {
	ID             kernel.UUID
	Status         shipment.Status
	ContainerType  shipment.ContainerType
	Currency       shipment.Currency
	DemurrageStart *time.Time
	Version        int64
	CreatedAt      time.Time
	Items          []OrderItemResponse
}

type OrderItemResponse struct {
	SkuID           kernel.SkuID
	PlannedQuantity decimal.Decimal
	UnitPrice       decimal.Decimal
	PlannedValue    decimal.Decimal
}
