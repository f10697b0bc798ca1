package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"shipment/internal/adapters/out/excel"
	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/core/application/usecases/queries"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/loading"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
}

type StatusChanger interface {
	Handle(ctx context.Context, cmd commands.RequestTransitionCommand) (*shipment.Order, error)
}

type LoadingReconciler interface {
	Handle(ctx context.Context, cmd commands.ReconcileLoadingCommand) (*loading.Record, error)
}

type BoardReader interface {
	Handle(ctx context.Context, query queries.GetBoardQuery) (queries.GetBoardQueryResponse, error)
}

type OrderReader interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
}

type LoadingRecordReader interface {
	Handle(ctx context.Context, query queries.GetLoadingRecordQuery) (queries.GetLoadingRecordQueryResponse, error)
}

// TransitionChecker answers pre-flight questions without touching an order.
type TransitionChecker interface {
	CanTransition(current, target string) (shipment.Decision, error)
}

// Handlers groups the use cases the HTTP surface exposes.
type Handlers struct {
	CreateOrder      OrderCreator
	ChangeStatus     StatusChanger
	ReconcileLoading LoadingReconciler
	GetBoard         BoardReader
	GetOrder         OrderReader
	GetLoadingRecord LoadingRecordReader
	Transitions      TransitionChecker
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	logger   *zap.Logger
	now      func() time.Time
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger,
		now:      time.Now,
	}
}

// GetStatuses handles GET /api/v1/statuses.
func (s *Server) GetStatuses(ctx echo.Context) error {
	ordered := shipment.Workflow().Ordered()
	names := make([]string, len(ordered))
	for i, status := range ordered {
		names[i] = status.String()
	}

	return ctx.JSON(http.StatusOK, servers.Statuses{
		Ordered:   names,
		Cancelled: shipment.Cancelled.String(),
	})
}

// CheckTransition handles GET /api/v1/transitions/check. Rejections are a
// regular answer here, not an error.
func (s *Server) CheckTransition(ctx echo.Context, params servers.CheckTransitionParams) error {
	decision, _ := s.handlers.Transitions.CanTransition(params.From, params.To)

	return ctx.JSON(http.StatusOK, servers.TransitionDecision{
		From:    params.From,
		To:      params.To,
		Allowed: decision.Allowed,
		Reason:  string(decision.Reason),
	})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	items := make([]commands.CreateOrderItem, 0, len(body.Items))
	for _, item := range body.Items {
		skuID, err := kernel.NewSkuID(item.SkuId)
		if err != nil {
			return err
		}
		line := commands.CreateOrderItem{
			SkuID:           skuID,
			PlannedQuantity: item.PlannedQuantity,
			UnitPrice:       item.UnitPrice,
		}
		if item.WeightPerUnit != nil {
			line.WeightPerUnit = decimal.NewNullDecimal(*item.WeightPerUnit)
		}
		if item.Description != nil {
			line.Description = *item.Description
		}
		items = append(items, line)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		shipment.ContainerType(body.ContainerType),
		shipment.Currency(body.Currency),
		items,
	)
	if err != nil {
		return err
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	order, err := s.readOrder(ctx.Request().Context(), cmd.OrderID())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, order)
}

// GetBoard handles GET /api/v1/orders/board.
func (s *Server) GetBoard(ctx echo.Context) error {
	board, err := s.handlers.GetBoard.Handle(ctx.Request().Context(), queries.NewGetBoardQuery())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toBoard(board))
}

// GetOrder handles GET /api/v1/orders/{orderId}. Clients re-sync from here
// after a failed transition.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return err
	}

	order, err := s.readOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, order)
}

// ChangeOrderStatus handles PUT /api/v1/orders/{orderId}/status and answers
// once the store acknowledged the change.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.ChangeOrderStatusJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewRequestTransitionCommand(orderID, body.Status)
	if err != nil {
		return err
	}

	order, err := s.handlers.ChangeStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrderFromModel(order))
}

// GetLoadingRecord handles GET /api/v1/orders/{orderId}/loading.
func (s *Server) GetLoadingRecord(ctx echo.Context, orderId servers.OrderId) error {
	response, err := s.readLoadingRecord(ctx.Request().Context(), orderId)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toLoadingRecord(response))
}

// ReconcileLoading handles POST /api/v1/orders/{orderId}/loading.
func (s *Server) ReconcileLoading(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.ReconcileLoadingJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return err
	}

	entries := make([]commands.ActualLoadEntry, 0, len(body.Entries))
	for _, entry := range body.Entries {
		skuID, err := kernel.NewSkuID(entry.SkuId)
		if err != nil {
			return err
		}
		line := commands.ActualLoadEntry{SkuID: skuID}
		if entry.ActualQuantity != nil {
			line.ActualQuantity = decimal.NewNullDecimal(*entry.ActualQuantity)
		}
		entries = append(entries, line)
	}

	loadedAt := s.now()
	if body.LoadedAt != nil {
		loadedAt = *body.LoadedAt
	}

	cmd, err := commands.NewReconcileLoadingCommand(orderID, entries, loadedAt)
	if err != nil {
		return err
	}

	if _, err = s.handlers.ReconcileLoading.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	response, err := s.readLoadingRecord(ctx.Request().Context(), orderId)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toLoadingRecord(response))
}

// ExportLoadingRecord handles GET /api/v1/orders/{orderId}/loading/export.
func (s *Server) ExportLoadingRecord(ctx echo.Context, orderId servers.OrderId) error {
	response, err := s.readLoadingRecord(ctx.Request().Context(), orderId)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	meta := excel.ReportMeta{
		OrderID:  orderId.String(),
		Currency: response.Currency.String(),
	}
	if err = excel.WriteLoadingReport(&buf, meta, response.Record); err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+excel.FileName(orderId.String())+`"`)
	return ctx.Blob(http.StatusOK, excel.ContentType, buf.Bytes())
}

func (s *Server) readOrder(ctx context.Context, orderID kernel.UUID) (servers.Order, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return servers.Order{}, err
	}

	response, err := s.handlers.GetOrder.Handle(ctx, query)
	if err != nil {
		return servers.Order{}, err
	}

	return toOrder(response), nil
}

func (s *Server) readLoadingRecord(ctx context.Context, orderId servers.OrderId) (queries.GetLoadingRecordQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return queries.GetLoadingRecordQueryResponse{}, err
	}

	query, err := queries.NewGetLoadingRecordQuery(orderID)
	if err != nil {
		return queries.GetLoadingRecordQueryResponse{}, err
	}

	response, err := s.handlers.GetLoadingRecord.Handle(ctx, query)
	if err != nil {
		return queries.GetLoadingRecordQueryResponse{}, err
	}

	return response, nil
}

func bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return errors.Join(errInvalidBody, err)
	}
	return ctx.Validate(body)
}
