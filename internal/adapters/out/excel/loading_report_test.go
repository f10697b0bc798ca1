package excel_test

import (
	"bytes"
	"testing"
	"time"

	"shipment/internal/adapters/out/excel"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/loading"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func loadedItem(t *testing.T, sku, planned, actual, plannedValue, unitPrice, weight string) *loading.LoadedItem {
	t.Helper()
	item, err := loading.NewLoadedItem(loading.LoadedItemParams{
		SkuID:           kernel.MustNewSkuID(sku),
		PlannedQuantity: decimal.RequireFromString(planned),
		ActualQuantity:  decimal.RequireFromString(actual),
		PlannedValue:    decimal.RequireFromString(plannedValue),
		UnitPrice:       decimal.RequireFromString(unitPrice),
		WeightPerUnit:   decimal.RequireFromString(weight),
	})
	require.NoError(t, err)
	return item
}

func render(t *testing.T, record *loading.Record) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, excel.WriteLoadingReport(&buf, excel.ReportMeta{OrderID: record.OrderID().String(), Currency: "USD"}, record))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func rawRow(t *testing.T, f *excelize.File, row string) []string {
	t.Helper()
	out := make([]string, 0, 11)
	for _, col := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"} {
		v, err := f.GetCellValue(excel.SheetName, col+row, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestWriteLoadingReport_RoundsAmountsAndWeights(t *testing.T) {
	orderID := kernel.NewUUID()
	record, err := loading.NewRecord(kernel.NewUUID(), orderID, []*loading.LoadedItem{
		loadedItem(t, "SKU1", "100", "95", "500", "5", "1.2"),
		loadedItem(t, "SKU2", "3", "4", "1", "0.3333333", "0.3333"),
	}, time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	f := render(t, record)

	order, err := f.GetCellValue(excel.SheetName, "B1")
	require.NoError(t, err)
	assert.Equal(t, orderID.String(), order)

	state, err := f.GetCellValue(excel.SheetName, "B4")
	require.NoError(t, err)
	assert.Equal(t, "open", state)

	header, err := f.GetCellValue(excel.SheetName, "K6")
	require.NoError(t, err)
	assert.Equal(t, "Variance Value", header)

	assert.Equal(t,
		[]string{"SKU1", "100", "95", "-5", "5", "120", "114", "-6", "500", "475", "-25"},
		rawRow(t, f, "7"))
	assert.Equal(t,
		[]string{"SKU2", "3", "4", "1", "0.33", "1", "1.333", "0.333", "1", "1.33", "0.33"},
		rawRow(t, f, "8"))
	assert.Equal(t,
		[]string{"Total", "103", "99", "-4", "", "121", "115.333", "-5.667", "501", "476.33", "-24.67"},
		rawRow(t, f, "9"))
}

func TestWriteLoadingReport_MarksLockedRecords(t *testing.T) {
	record, err := loading.RestoreRecord(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]*loading.LoadedItem{loadedItem(t, "SKU1", "1", "1", "1", "1", "1")},
		true,
		time.Now(),
		time.Now(),
	)
	require.NoError(t, err)

	f := render(t, record)

	state, err := f.GetCellValue(excel.SheetName, "B4")
	require.NoError(t, err)
	assert.Equal(t, "locked", state)
}

func TestWriteLoadingReport_RejectsZeroRecord(t *testing.T) {
	var buf bytes.Buffer

	err := excel.WriteLoadingReport(&buf, excel.ReportMeta{}, &loading.Record{})

	require.ErrorIs(t, err, loading.ErrRecordIsNotConstructed)
	assert.Zero(t, buf.Len())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "loading-variance-abc.xlsx", excel.FileName("abc"))
}
