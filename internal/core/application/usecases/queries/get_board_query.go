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
	ErrGetBoardQueryIsNotConstructed = errors.New(
		"GetBoardQuery must be created via NewGetBoardQuery constructor",
	)
)

// GetBoardQuery retrieves the kanban board: every order that is not
// cancelled, grouped into one column per workflow stage.
//
// Example:
//
//	board, err := handler.Handle(ctx, NewGetBoardQuery())
//	for _, column := range board.Columns {
//	    fmt.Printf("%s: %d\n", column.Status, len(column.Cards))
//	}
type GetBoardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetBoardQuery() GetBoardQuery {
	return GetBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetBoardQueryIsNotConstructed)
}

// GetBoardQueryResponse lists the columns in workflow order, empty ones
// included.
type GetBoardQueryResponse struct {
	Columns []BoardColumn
}

type BoardColumn struct {
	Status shipment.Status
	Cards  []BoardCard
}

// BoardCard is the summary of one order on the board.
type BoardCard struct {
	ID             kernel.UUID
	Status         shipment.Status
	ContainerType  shipment.ContainerType
	Currency       shipment.Currency
	ItemCount      int
	PlannedValue   decimal.Decimal
	DemurrageStart *time.Time
	Version        int64
	Reconciled     bool
	LoadingLocked  bool
}
