package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "shipment/internal/adapters/out/postgres"
	"shipment/internal/adapters/out/postgres/loadingrepo"
	"shipment/internal/adapters/out/postgres/orderrepo"
	"shipment/internal/core/application/usecases/queries"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/loading"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orders    *orderrepo.GormOrderRepository
	records   *loadingrepo.GormLoadingRecordRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(dsn)
	suite.Require().NoError(err)
	suite.db = db
	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.orders = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.records = loadingrepo.NewGormLoadingRecordRepository(db, &mockAggregateTracker{})
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE loaded_items, loading_records, order_items, orders").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) addOrder(status shipment.Status) *shipment.Order {
	first, err := shipment.NewOrderItem(kernel.MustNewSkuID("SKU1"), decimal.NewFromInt(100), decimal.RequireFromString("5.00"))
	suite.Require().NoError(err)
	second, err := shipment.NewOrderItem(kernel.MustNewSkuID("SKU2"), decimal.NewFromInt(10), decimal.RequireFromString("2.50"))
	suite.Require().NoError(err)

	o, err := shipment.RestoreOrder(kernel.NewUUID(), status, shipment.Container40HC, shipment.CurrencyCNY,
		[]*shipment.OrderItem{first, second}, nil, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

func (suite *QueryHandlersTestSuite) addRecord(orderID kernel.UUID, locked bool) {
	item, err := loading.NewLoadedItem(loading.LoadedItemParams{
		SkuID:           kernel.MustNewSkuID("SKU1"),
		PlannedQuantity: decimal.NewFromInt(100),
		ActualQuantity:  decimal.NewFromInt(95),
		PlannedValue:    decimal.RequireFromString("500.00"),
		UnitPrice:       decimal.RequireFromString("5"),
		WeightPerUnit:   decimal.RequireFromString("1.5"),
	})
	suite.Require().NoError(err)

	record, err := loading.RestoreRecord(kernel.NewUUID(), orderID, []*loading.LoadedItem{item}, locked, time.Now(), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.records.Add(context.Background(), record))
}

func (suite *QueryHandlersTestSuite) TestGetBoard_EmptyDatabase_ReturnsAllColumns() {
	handler := queries.NewGetBoardQueryHandler(suite.db)

	board, err := handler.Handle(context.Background(), queries.NewGetBoardQuery())

	suite.Require().NoError(err)
	suite.Require().Len(board.Columns, 7)
	suite.Equal(shipment.Draft, board.Columns[0].Status)
	suite.Equal(shipment.Delivered, board.Columns[6].Status)
	for _, column := range board.Columns {
		suite.NotNil(column.Cards)
		suite.Empty(column.Cards)
	}
}

func (suite *QueryHandlersTestSuite) TestGetBoard_GroupsByStatusAndSkipsCancelled() {
	draft := suite.addOrder(shipment.Draft)
	loaded := suite.addOrder(shipment.Loaded)
	inTransit := suite.addOrder(shipment.InTransit)
	suite.addOrder(shipment.Cancelled)
	suite.addRecord(loaded.ID(), false)
	suite.addRecord(inTransit.ID(), true)

	handler := queries.NewGetBoardQueryHandler(suite.db)
	board, err := handler.Handle(context.Background(), queries.NewGetBoardQuery())

	suite.Require().NoError(err)
	cards := 0
	for _, column := range board.Columns {
		cards += len(column.Cards)
		for _, card := range column.Cards {
			suite.Equal(column.Status, card.Status)
		}
	}
	suite.Equal(3, cards)

	draftCard := board.Columns[0].Cards[0]
	suite.Equal(draft.ID(), draftCard.ID)
	suite.Equal(2, draftCard.ItemCount)
	suite.True(decimal.RequireFromString("525").Equal(draftCard.PlannedValue))
	suite.Equal(shipment.Container40HC, draftCard.ContainerType)
	suite.Equal(shipment.CurrencyCNY, draftCard.Currency)
	suite.False(draftCard.Reconciled)

	loadedCard := board.Columns[2].Cards[0]
	suite.Equal(loaded.ID(), loadedCard.ID)
	suite.True(loadedCard.Reconciled)
	suite.False(loadedCard.LoadingLocked)

	transitCard := board.Columns[4].Cards[0]
	suite.Equal(shipment.InTransit, transitCard.Status)
	suite.True(transitCard.LoadingLocked)
}

func (suite *QueryHandlersTestSuite) TestGetBoard_InvalidQuery_ReturnsError() {
	handler := queries.NewGetBoardQueryHandler(suite.db)

	_, err := handler.Handle(context.Background(), queries.GetBoardQuery{})

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetBoardQuery constructor")
}

func (suite *QueryHandlersTestSuite) TestGetOrder_ReturnsItemsInPlannedOrder() {
	o := suite.addOrder(shipment.Arrived)
	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	resp, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(o.ID(), resp.ID)
	suite.Equal(shipment.Arrived, resp.Status)
	suite.Equal(int64(1), resp.Version)
	suite.Require().Len(resp.Items, 2)
	suite.Equal("SKU1", resp.Items[0].SkuID.String())
	suite.True(decimal.RequireFromString("500").Equal(resp.Items[0].PlannedValue))
	suite.True(decimal.RequireFromString("25").Equal(resp.Items[1].PlannedValue))
}

func (suite *QueryHandlersTestSuite) TestGetOrder_NotFound() {
	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetLoadingRecord_DerivesVariances() {
	o := suite.addOrder(shipment.Loaded)
	suite.addRecord(o.ID(), false)
	handler := queries.NewGetLoadingRecordQueryHandler(suite.db)
	query, err := queries.NewGetLoadingRecordQuery(o.ID())
	suite.Require().NoError(err)

	resp, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(shipment.CurrencyCNY, resp.Currency)
	suite.Equal(o.ID(), resp.Record.OrderID())
	suite.False(resp.Record.IsLocked())

	items := resp.Record.Items()
	suite.Require().Len(items, 1)
	suite.True(decimal.NewFromInt(-5).Equal(items[0].VarianceQuantity()))
	suite.True(decimal.RequireFromString("-7.5").Equal(items[0].VarianceWeight()))
	suite.True(decimal.NewFromInt(-25).Equal(resp.Record.Totals().VarianceValue))
}

func (suite *QueryHandlersTestSuite) TestGetLoadingRecord_NotReconciled() {
	o := suite.addOrder(shipment.Confirmed)
	handler := queries.NewGetLoadingRecordQueryHandler(suite.db)
	query, err := queries.NewGetLoadingRecordQuery(o.ID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
