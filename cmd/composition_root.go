package cmd

import (
	httpin "shipment/internal/adapters/in/http"
	"shipment/internal/adapters/out/locking"
	"shipment/internal/adapters/out/orderlease"
	"shipment/internal/adapters/out/postgres"
	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/core/application/usecases/queries"
	"shipment/internal/core/application/workflow"
	"shipment/internal/core/domain/services"
	"shipment/internal/core/ports"
	"shipment/internal/jobs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	locker     ports.OrderLocker
	engine     *workflow.Engine
	logger     *zap.Logger
}

// NewCompositionRoot wires the process-wide singletons. A nil rdb keeps the
// per-order lock inside this process.
func NewCompositionRoot(config Config, gormDB *gorm.DB, rdb redis.UniversalClient, logger *zap.Logger) CompositionRoot {
	var locker ports.OrderLocker = locking.NewKeyedLocker()
	if rdb != nil {
		locker = orderlease.NewLocker(locker, rdb, config.OrderLockTTL, logger)
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB, logger.Named("uow"))
	engine := workflow.NewEngine(locker, uowFactory, logger.Named("workflow"),
		workflow.WithPersistTimeout(config.PersistTimeout))

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *uowFactory,
		locker:     locker,
		engine:     engine,
		logger:     logger,
	}
}

// WorkflowEngine is shared by every caller so that the per-order slot is
// process-wide.
func (c *CompositionRoot) WorkflowEngine() *workflow.Engine {
	return c.engine
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestTransitionCommandHandler() commands.RequestTransitionCommandHandler {
	return commands.NewRequestTransitionCommandHandler(c.engine)
}

func (c *CompositionRoot) CreateReconcileLoadingCommandHandler() commands.ReconcileLoadingCommandHandler {
	var f commands.ReconcileUoWFactory = FuncReconcileUoWFactory(func() commands.ReconcileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileLoadingCommandHandler(f, c.locker)
}

func (c *CompositionRoot) CreateLockShippedRecordsCommandHandler() commands.LockShippedRecordsCommandHandler {
	var f commands.LoadingRecordUoWFactory = FuncLoadingRecordUoWFactory(func() commands.LoadingRecordUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLockShippedRecordsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetBoardQueryHandler() queries.GetBoardQueryHandler {
	return queries.NewGetBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoadingRecordQueryHandler() queries.GetLoadingRecordQueryHandler {
	return queries.NewGetLoadingRecordQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	changeStatus := c.CreateRequestTransitionCommandHandler()
	reconcile := c.CreateReconcileLoadingCommandHandler()
	board := c.CreateGetBoardQueryHandler()
	order := c.CreateGetOrderQueryHandler()
	record := c.CreateGetLoadingRecordQueryHandler()

	return httpin.NewServer(httpin.Handlers{
		CreateOrder:      &createOrder,
		ChangeStatus:     &changeStatus,
		ReconcileLoading: &reconcile,
		GetBoard:         board,
		GetOrder:         order,
		GetLoadingRecord: record,
		Transitions:      services.NewTransitionValidator(),
	}, c.logger.Named("http"))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	lockShipped := c.CreateLockShippedRecordsCommandHandler()
	return jobs.NewJobManager(&lockShipped, c.config.LockSweepSchedule, c.logger.Named("jobs"))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReconcileUoWFactory func() commands.ReconcileUoW

func (f FuncReconcileUoWFactory) Create() commands.ReconcileUoW {
	return f()
}

type FuncLoadingRecordUoWFactory func() commands.LoadingRecordUoW

func (f FuncLoadingRecordUoWFactory) Create() commands.LoadingRecordUoW {
	return f()
}
