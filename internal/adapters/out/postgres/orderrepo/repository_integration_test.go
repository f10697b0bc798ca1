package orderrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "shipment/internal/adapters/out/postgres"
	"shipment/internal/adapters/out/postgres/orderrepo"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite runs the order repository against a real
// PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(connStr)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	tracker := new(MockAggregateTracker)
	repository := orderrepo.NewGormOrderRepository(suite.db, tracker)
	testOrder := suite.createTestOrder("SKU1", "SKU2")
	tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := repository.Add(ctx, testOrder)

	suite.Require().NoError(err)
	suite.assertOrderCount(1)
	tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrderWithItems() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("SKU-B", "SKU-A", "SKU-C")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	stored, err := suite.repository.Get(ctx, testOrder.ID())

	suite.Require().NoError(err)
	suite.True(stored.IsEqual(testOrder))
	suite.Equal(shipment.Draft, stored.Status())
	suite.Equal(shipment.Container40HC, stored.ContainerType())
	suite.Equal(shipment.CurrencyUSD, stored.Currency())
	suite.Equal(int64(1), stored.Version())
	suite.Nil(stored.DemurrageStart())

	items := stored.Items()
	suite.Require().Len(items, 3)
	suite.Equal("SKU-B", items[0].SkuID().String())
	suite.Equal("SKU-A", items[1].SkuID().String())
	suite.Equal("SKU-C", items[2].SkuID().String())
	suite.True(decimal.RequireFromString("500.00").Equal(items[0].PlannedValue()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusChangeAndDemurrage() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("SKU1")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	arrivedAt := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
	_, err := testOrder.ChangeStatus(shipment.Arrived, arrivedAt)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	stored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Arrived, stored.Status())
	suite.Equal(int64(2), stored.Version())
	suite.Require().NotNil(stored.DemurrageStart())
	suite.True(arrivedAt.Equal(*stored.DemurrageStart()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_IsRejected() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("SKU1")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	first := testOrder.Clone()
	second := testOrder.Clone()
	_, err := first.ChangeStatus(shipment.Confirmed, time.Now())
	suite.Require().NoError(err)
	_, err = second.ChangeStatus(shipment.Cancelled, time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, first))
	err = suite.repository.Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
	stored, getErr := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(getErr)
	suite.Equal(shipment.Confirmed, stored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	testOrder := suite.createTestOrder("SKU1")
	_, err := testOrder.ChangeStatus(shipment.Confirmed, time.Now())
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), testOrder)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(skus ...string) *shipment.Order {
	items := make([]*shipment.OrderItem, 0, len(skus))
	for _, sku := range skus {
		item, err := shipment.NewOrderItem(
			kernel.MustNewSkuID(sku),
			decimal.NewFromInt(100),
			decimal.RequireFromString("5.00"),
		)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	o, err := shipment.NewOrder(kernel.NewUUID(), shipment.Container40HC, shipment.CurrencyUSD, items)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
