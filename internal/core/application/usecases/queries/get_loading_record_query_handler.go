package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/loading"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetLoadingRecordQueryHandler struct {
	db *gorm.DB
}

func NewGetLoadingRecordQueryHandler(db *gorm.DB) GetLoadingRecordQueryHandler {
	return GetLoadingRecordQueryHandler{db: db}
}

// Handle restores the record from its stored inputs; variances are derived by
// the loading model, never read from the database.
func (h GetLoadingRecordQueryHandler) Handle(
	ctx context.Context,
	query GetLoadingRecordQuery,
) (GetLoadingRecordQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoadingRecordQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID()

	var (
		recordID            uuid.UUID
		currency            string
		isLocked            bool
		loadedAt, createdAt time.Time
	)
	err := db.Raw(`
		SELECT r.id, o.currency, r.is_locked, r.loaded_at, r.created_at
		FROM loading_records r
		JOIN orders o ON o.id = r.order_id
		WHERE r.order_id = ?
	`, orderID.Bytes()).Row().Scan(&recordID, &currency, &isLocked, &loadedAt, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetLoadingRecordQueryResponse{}, errs.NewObjectNotFoundError("loadingRecord", orderID.String())
		}
		return GetLoadingRecordQueryResponse{}, err
	}

	items, err := h.items(db, recordID)
	if err != nil {
		return GetLoadingRecordQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(recordID[:])
	if err != nil {
		return GetLoadingRecordQueryResponse{}, err
	}

	record, err := loading.RestoreRecord(id, orderID, items, isLocked, loadedAt, createdAt)
	if err != nil {
		return GetLoadingRecordQueryResponse{}, err
	}

	parsedCurrency, err := shipment.ParseCurrency(currency)
	if err != nil {
		return GetLoadingRecordQueryResponse{}, err
	}

	return GetLoadingRecordQueryResponse{Currency: parsedCurrency, Record: record}, nil
}

func (h GetLoadingRecordQueryHandler) items(db *gorm.DB, recordID uuid.UUID) ([]*loading.LoadedItem, error) {
	rows, err := db.Raw(`
		SELECT sku_id, planned_quantity, actual_quantity, planned_value, unit_price, weight_per_unit
		FROM loaded_items
		WHERE record_id = ?
		ORDER BY position
	`, recordID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*loading.LoadedItem, 0)
	for rows.Next() {
		var (
			sku    string
			params loading.LoadedItemParams
		)
		if err = rows.Scan(
			&sku,
			&params.PlannedQuantity,
			&params.ActualQuantity,
			&params.PlannedValue,
			&params.UnitPrice,
			&params.WeightPerUnit,
		); err != nil {
			return nil, err
		}

		if params.SkuID, err = kernel.NewSkuID(sku); err != nil {
			return nil, err
		}

		item, itemErr := loading.NewLoadedItem(params)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
