package loadingrepo

import (
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/loading"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoadingRecordDTO is the row layout of the loading_records table. The unique
// index on order_id enforces one record per order.
type LoadingRecordDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	IsLocked  bool            `gorm:"not null;default:false"`
	LoadedAt  time.Time       `gorm:"type:timestamptz;not null"`
	CreatedAt time.Time       `gorm:"type:timestamptz;not null"`
	Items     []LoadedItemDTO `gorm:"foreignKey:RecordID;constraint:OnDelete:CASCADE"`
}

func (LoadingRecordDTO) TableName() string {
	return "loading_records"
}

// LoadedItemDTO holds only the canonical inputs of a line; weights, actual
// value and variances are recomputed on load.
type LoadedItemDTO struct {
	RecordID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SkuID           string          `gorm:"type:varchar(64);primaryKey"`
	Position        int             `gorm:"not null"`
	PlannedQuantity decimal.Decimal `gorm:"type:numeric;not null"`
	ActualQuantity  decimal.Decimal `gorm:"type:numeric;not null"`
	PlannedValue    decimal.Decimal `gorm:"type:numeric;not null"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric;not null"`
	WeightPerUnit   decimal.Decimal `gorm:"type:numeric;not null"`
}

func (LoadedItemDTO) TableName() string {
	return "loaded_items"
}

func fromDomain(record *loading.Record) LoadingRecordDTO {
	recordID := record.ID().Bytes()
	items := make([]LoadedItemDTO, 0, len(record.Items()))

	for i, item := range record.Items() {
		items = append(items, LoadedItemDTO{
			RecordID:        recordID,
			SkuID:           item.SkuID().String(),
			Position:        i,
			PlannedQuantity: item.PlannedQuantity(),
			ActualQuantity:  item.ActualQuantity(),
			PlannedValue:    item.PlannedValue(),
			UnitPrice:       item.UnitPrice(),
			WeightPerUnit:   item.WeightPerUnit(),
		})
	}

	return LoadingRecordDTO{
		ID:        recordID,
		OrderID:   record.OrderID().Bytes(),
		IsLocked:  record.IsLocked(),
		LoadedAt:  record.LoadedAt(),
		CreatedAt: record.CreatedAt(),
		Items:     items,
	}
}

func toDomain(dto LoadingRecordDTO) (*loading.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*loading.LoadedItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return loading.RestoreRecord(id, orderID, items, dto.IsLocked, dto.LoadedAt, dto.CreatedAt)
}

func itemToDomain(dto LoadedItemDTO) (*loading.LoadedItem, error) {
	skuID, err := kernel.NewSkuID(dto.SkuID)
	if err != nil {
		return nil, err
	}

	return loading.NewLoadedItem(loading.LoadedItemParams{
		SkuID:           skuID,
		PlannedQuantity: dto.PlannedQuantity,
		ActualQuantity:  dto.ActualQuantity,
		PlannedValue:    dto.PlannedValue,
		UnitPrice:       dto.UnitPrice,
		WeightPerUnit:   dto.WeightPerUnit,
	})
}
