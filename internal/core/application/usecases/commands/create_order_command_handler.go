package commands

import (
	"context"

	"shipment/internal/core/domain/model/shipment"
)

// CreateOrderCommandHandler opens new orders in Draft and records the SKU
// weights supplied with them.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the order and persists it together with the SKU master rows
// in one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]*shipment.OrderItem, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		item, err := shipment.NewOrderItem(line.SkuID, line.PlannedQuantity, line.UnitPrice)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	o, err := shipment.NewOrder(cmd.OrderID(), cmd.ContainerType(), cmd.Currency(), items)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	skuRepo := uow.SkuRepository()
	for _, line := range cmd.Items() {
		if !line.WeightPerUnit.Valid {
			continue
		}
		if err = skuRepo.Upsert(ctx, line.SkuID, line.Description, line.WeightPerUnit.Decimal); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
