package orderrepo

import (
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of the orders table. Status is stored by its
// wire name so the table stays readable without the code.
type OrderDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Status         string         `gorm:"type:varchar(32);not null;index"`
	ContainerType  string         `gorm:"type:varchar(8);not null"`
	Currency       string         `gorm:"type:char(3);not null"`
	DemurrageStart *time.Time     `gorm:"type:timestamptz"`
	Version        int64          `gorm:"not null"`
	CreatedAt      time.Time      `gorm:"type:timestamptz;not null;autoCreateTime"`
	Items          []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one planned line. Position keeps the planned sequence.
type OrderItemDTO struct {
	OrderID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SkuID           string          `gorm:"type:varchar(64);primaryKey"`
	Position        int             `gorm:"not null"`
	PlannedQuantity decimal.Decimal `gorm:"type:numeric;not null"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric;not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *shipment.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(o.Items()))

	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:         orderID,
			SkuID:           item.SkuID().String(),
			Position:        i,
			PlannedQuantity: item.PlannedQuantity(),
			UnitPrice:       item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:             orderID,
		Status:         o.Status().String(),
		ContainerType:  o.ContainerType().String(),
		Currency:       o.Currency().String(),
		DemurrageStart: o.DemurrageStart(),
		Version:        o.Version(),
		Items:          items,
	}
}

func toDomain(dto OrderDTO) (*shipment.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	containerType, err := shipment.ParseContainerType(dto.ContainerType)
	if err != nil {
		return nil, err
	}

	currency, err := shipment.ParseCurrency(dto.Currency)
	if err != nil {
		return nil, err
	}

	items := make([]*shipment.OrderItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return shipment.RestoreOrder(id, status, containerType, currency, items, dto.DemurrageStart, dto.Version)
}

func itemToDomain(dto OrderItemDTO) (*shipment.OrderItem, error) {
	skuID, err := kernel.NewSkuID(dto.SkuID)
	if err != nil {
		return nil, err
	}
	return shipment.NewOrderItem(skuID, dto.PlannedQuantity, dto.UnitPrice)
}
