package queries

import (
	"context"
	"database/sql"
	"errors"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID()

	response := GetOrderQueryResponse{ID: orderID}
	var (
		status, containerType, currency string
		demurrageStart                  sql.NullTime
	)
	err := db.Raw(`
		SELECT status, container_type, currency, demurrage_start, version, created_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row().Scan(
		&status,
		&containerType,
		&currency,
		&demurrageStart,
		&response.Version,
		&response.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return GetOrderQueryResponse{}, err
	}

	if response.Status, err = shipment.ParseStatus(status); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.ContainerType, err = shipment.ParseContainerType(containerType); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.Currency, err = shipment.ParseCurrency(currency); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if demurrageStart.Valid {
		t := demurrageStart.Time.UTC()
		response.DemurrageStart = &t
	}
	response.CreatedAt = response.CreatedAt.UTC()

	rows, err := db.Raw(`
		SELECT sku_id, planned_quantity, unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	response.Items = make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			sku                        string
			plannedQuantity, unitPrice decimal.Decimal
		)
		if err = rows.Scan(&sku, &plannedQuantity, &unitPrice); err != nil {
			return GetOrderQueryResponse{}, err
		}

		skuID, skuErr := kernel.NewSkuID(sku)
		if skuErr != nil {
			return GetOrderQueryResponse{}, skuErr
		}

		response.Items = append(response.Items, OrderItemResponse{
			SkuID:           skuID,
			PlannedQuantity: plannedQuantity,
			UnitPrice:       unitPrice,
			PlannedValue:    plannedQuantity.Mul(unitPrice),
		})
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}
