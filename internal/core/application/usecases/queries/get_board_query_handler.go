package queries

import (
	"context"
	"database/sql"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetBoardQueryHandler reads the board straight from the database.
type GetBoardQueryHandler struct {
	db *gorm.DB
}

func NewGetBoardQueryHandler(db *gorm.DB) GetBoardQueryHandler {
	return GetBoardQueryHandler{db: db}
}

// Handle returns the board. Cards within a column are oldest first.
func (h GetBoardQueryHandler) Handle(ctx context.Context, query GetBoardQuery) (GetBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBoardQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.container_type,
			o.currency,
			o.demurrage_start,
			o.version,
			COUNT(i.sku_id),
			COALESCE(SUM(i.planned_quantity * i.unit_price), 0),
			r.is_locked
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		LEFT JOIN loading_records r ON r.order_id = o.id
		WHERE o.status <> ?
		GROUP BY o.id, r.is_locked
		ORDER BY o.created_at, o.id
	`, shipment.Cancelled.String()).Rows()
	if err != nil {
		return GetBoardQueryResponse{}, err
	}
	defer rows.Close()

	byStatus := make(map[shipment.Status][]BoardCard)
	for rows.Next() {
		var (
			id                              uuid.UUID
			status, containerType, currency string
			demurrageStart                  sql.NullTime
			card                            BoardCard
			plannedValue                    decimal.Decimal
			isLocked                        sql.NullBool
		)

		if err = rows.Scan(
			&id,
			&status,
			&containerType,
			&currency,
			&demurrageStart,
			&card.Version,
			&card.ItemCount,
			&plannedValue,
			&isLocked,
		); err != nil {
			return GetBoardQueryResponse{}, err
		}

		if card.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetBoardQueryResponse{}, err
		}
		if card.Status, err = shipment.ParseStatus(status); err != nil {
			return GetBoardQueryResponse{}, err
		}
		if card.ContainerType, err = shipment.ParseContainerType(containerType); err != nil {
			return GetBoardQueryResponse{}, err
		}
		if card.Currency, err = shipment.ParseCurrency(currency); err != nil {
			return GetBoardQueryResponse{}, err
		}
		if demurrageStart.Valid {
			t := demurrageStart.Time.UTC()
			card.DemurrageStart = &t
		}
		card.PlannedValue = plannedValue
		card.Reconciled = isLocked.Valid
		card.LoadingLocked = isLocked.Valid && isLocked.Bool

		byStatus[card.Status] = append(byStatus[card.Status], card)
	}

	if err = rows.Err(); err != nil {
		return GetBoardQueryResponse{}, err
	}

	stages := shipment.Workflow().Ordered()
	board := GetBoardQueryResponse{Columns: make([]BoardColumn, 0, len(stages))}
	for _, status := range stages {
		cards := byStatus[status]
		if cards == nil {
			cards = []BoardCard{}
		}
		board.Columns = append(board.Columns, BoardColumn{Status: status, Cards: cards})
	}

	return board, nil
}
