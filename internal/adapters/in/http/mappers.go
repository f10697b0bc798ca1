package http

import (
	"shipment/internal/core/application/usecases/queries"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/generated/servers"
)

func toOrder(response queries.GetOrderQueryResponse) servers.Order {
	items := make([]servers.OrderItem, len(response.Items))
	for i, item := range response.Items {
		items[i] = servers.OrderItem{
			SkuId:           item.SkuID.String(),
			PlannedQuantity: item.PlannedQuantity,
			UnitPrice:       item.UnitPrice,
			PlannedValue:    item.PlannedValue,
		}
	}

	return servers.Order{
		Id:             response.ID.Bytes(),
		Status:         response.Status.String(),
		ContainerType:  response.ContainerType.String(),
		Currency:       response.Currency.String(),
		DemurrageStart: response.DemurrageStart,
		Version:        response.Version,
		Items:          items,
	}
}

func toOrderFromModel(order *shipment.Order) servers.Order {
	source := order.Items()
	items := make([]servers.OrderItem, len(source))
	for i, item := range source {
		items[i] = servers.OrderItem{
			SkuId:           item.SkuID().String(),
			PlannedQuantity: item.PlannedQuantity(),
			UnitPrice:       item.UnitPrice(),
			PlannedValue:    item.PlannedValue(),
		}
	}

	return servers.Order{
		Id:             order.ID().Bytes(),
		Status:         order.Status().String(),
		ContainerType:  order.ContainerType().String(),
		Currency:       order.Currency().String(),
		DemurrageStart: order.DemurrageStart(),
		Version:        order.Version(),
		Items:          items,
	}
}

func toBoard(response queries.GetBoardQueryResponse) servers.Board {
	columns := make([]servers.BoardColumn, len(response.Columns))
	for i, column := range response.Columns {
		cards := make([]servers.BoardCard, len(column.Cards))
		for j, card := range column.Cards {
			cards[j] = servers.BoardCard{
				Id:             card.ID.Bytes(),
				Status:         card.Status.String(),
				ContainerType:  card.ContainerType.String(),
				Currency:       card.Currency.String(),
				ItemCount:      card.ItemCount,
				PlannedValue:   card.PlannedValue,
				DemurrageStart: card.DemurrageStart,
				Version:        card.Version,
				Reconciled:     card.Reconciled,
				LoadingLocked:  card.LoadingLocked,
			}
		}
		columns[i] = servers.BoardColumn{
			Status: column.Status.String(),
			Cards:  cards,
		}
	}

	return servers.Board{Columns: columns}
}

// toLoadingRecord exposes the exact, unrounded values.
func toLoadingRecord(response queries.GetLoadingRecordQueryResponse) servers.LoadingRecord {
	record := response.Record

	source := record.Items()
	items := make([]servers.LoadedItem, len(source))
	for i, item := range source {
		items[i] = servers.LoadedItem{
			SkuId:            item.SkuID().String(),
			UnitPrice:        item.UnitPrice(),
			WeightPerUnit:    item.WeightPerUnit(),
			PlannedQuantity:  item.PlannedQuantity(),
			ActualQuantity:   item.ActualQuantity(),
			VarianceQuantity: item.VarianceQuantity(),
			PlannedWeight:    item.PlannedWeight(),
			ActualWeight:     item.ActualWeight(),
			VarianceWeight:   item.VarianceWeight(),
			PlannedValue:     item.PlannedValue(),
			ActualValue:      item.ActualValue(),
			VarianceValue:    item.VarianceValue(),
		}
	}

	totals := record.Totals()
	return servers.LoadingRecord{
		Id:       record.ID().Bytes(),
		OrderId:  record.OrderID().Bytes(),
		Currency: response.Currency.String(),
		IsLocked: record.IsLocked(),
		LoadedAt: record.LoadedAt(),
		Items:    items,
		Totals: servers.LoadingTotals{
			PlannedQuantity:  totals.PlannedQuantity,
			ActualQuantity:   totals.ActualQuantity,
			VarianceQuantity: totals.VarianceQuantity,
			PlannedWeight:    totals.PlannedWeight,
			ActualWeight:     totals.ActualWeight,
			VarianceWeight:   totals.VarianceWeight,
			PlannedValue:     totals.PlannedValue,
			ActualValue:      totals.ActualValue,
			VarianceValue:    totals.VarianceValue,
		},
	}
}
