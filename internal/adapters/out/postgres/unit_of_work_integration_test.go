package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "shipment/internal/adapters/out/postgres"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/loading"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(dsn)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, zap.NewNop())
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE loaded_items, loading_records, order_items, orders, skus").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.LoadingRecordRepository())
	suite.NotNil(uow1.SkuRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

// Shipping an order and locking its loading record commit together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipAndLockCommitTogether() {
	ctx := context.Background()
	testOrder := suite.seedLoadedOrderWithRecord()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	_, err = o.ChangeStatus(shipment.Shipped, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.LoadingRecordRepository().LockByOrder(ctx, o.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	stored, err := reader.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Shipped, stored.Status())
	record, err := reader.LoadingRecordRepository().GetByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(record.IsLocked())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsStatusAndLock() {
	ctx := context.Background()
	testOrder := suite.seedLoadedOrderWithRecord()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	_, err = o.ChangeStatus(shipment.Shipped, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.LoadingRecordRepository().LockByOrder(ctx, o.ID()))
	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	stored, err := reader.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Loaded, stored.Status())
	suite.Equal(testOrder.Version(), stored.Version())
	record, err := reader.LoadingRecordRepository().GetByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.False(record.IsLocked())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitLogsWrittenAggregates() {
	ctx := context.Background()
	core, logs := observer.New(zapcore.DebugLevel)
	uow := postgres_adapter.NewGormUnitOfWorkFactory(suite.db, zap.New(core)).Create()

	suite.Require().NoError(uow.Begin(ctx))
	testOrder := createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	_, err := testOrder.ChangeStatus(shipment.Confirmed, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	committed := logs.FilterMessage("unit of work committed").All()
	suite.Require().Len(committed, 1)
	fields := committed[0].ContextMap()
	suite.Equal(int64(2), fields["writes"])
	suite.Equal([]interface{}{testOrder.ID().String(), testOrder.ID().String()}, fields["aggregateIds"])

	// a rolled back transaction logs nothing and starts the next one clean
	suite.Require().NoError(uow.Begin(ctx))
	_, err = testOrder.ChangeStatus(shipment.Loaded, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))
	suite.Equal(1, logs.FilterMessage("unit of work committed").Len())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := createTestOrder()

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) seedLoadedOrderWithRecord() *shipment.Order {
	ctx := context.Background()
	testOrder := createTestOrder()
	_, err := testOrder.ChangeStatus(shipment.Loaded, time.Now())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	item, err := loading.NewLoadedItem(loading.LoadedItemParams{
		SkuID:           kernel.MustNewSkuID("SKU1"),
		PlannedQuantity: decimal.NewFromInt(100),
		ActualQuantity:  decimal.NewFromInt(95),
		PlannedValue:    decimal.NewFromInt(500),
		UnitPrice:       decimal.NewFromInt(5),
		WeightPerUnit:   decimal.NewFromInt(2),
	})
	suite.Require().NoError(err)
	record, err := loading.NewRecord(kernel.NewUUID(), testOrder.ID(), []*loading.LoadedItem{item}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.LoadingRecordRepository().Add(ctx, record))
	suite.Require().NoError(uow.Commit(ctx))

	return testOrder
}

func createTestOrder() *shipment.Order {
	item, _ := shipment.NewOrderItem(kernel.MustNewSkuID("SKU1"), decimal.NewFromInt(100), decimal.NewFromInt(5))
	o, _ := shipment.NewOrder(kernel.NewUUID(), shipment.Container40FT, shipment.CurrencyCNY, []*shipment.OrderItem{item})
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
