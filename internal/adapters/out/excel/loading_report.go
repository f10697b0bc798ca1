// Package excel renders loading variance reports as xlsx workbooks. This is
// the only place where reconciled values are rounded.
package excel

import (
	"fmt"
	"io"

	"shipment/internal/core/domain/model/loading"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Variance"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	amountPlaces = 2
	weightPlaces = 3
)

var headers = []string{
	"SKU",
	"Planned Qty", "Actual Qty", "Variance Qty",
	"Unit Price",
	"Planned Weight", "Actual Weight", "Variance Weight",
	"Planned Value", "Actual Value", "Variance Value",
}

// ReportMeta is printed above the item table.
type ReportMeta struct {
	OrderID  string
	Currency string
}

// WriteLoadingReport writes one sheet with a row per loaded item followed by
// a totals row. Amounts are rounded half away from zero to 2 places, weights
// to 3.
func WriteLoadingReport(w io.Writer, meta ReportMeta, record *loading.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: ptr("#,##0.00")})
	if err != nil {
		return err
	}
	weightStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: ptr("#,##0.000")})
	if err != nil {
		return err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	status := "open"
	if record.IsLocked() {
		status = "locked"
	}
	preamble := [][]any{
		{"Order", meta.OrderID},
		{"Currency", meta.Currency},
		{"Loaded at", record.LoadedAt().Format("2006-01-02 15:04 MST")},
		{"Record", status},
	}
	for i, row := range preamble {
		if err = f.SetSheetRow(SheetName, cell(1, i+1), &row); err != nil {
			return err
		}
	}

	headerRow := len(preamble) + 2
	if err = f.SetSheetRow(SheetName, cell(1, headerRow), &headers); err != nil {
		return err
	}
	if err = f.SetCellStyle(SheetName, cell(1, headerRow), cell(len(headers), headerRow), boldStyle); err != nil {
		return err
	}

	row := headerRow + 1
	for _, item := range record.Items() {
		values := []any{
			item.SkuID().String(),
			round(item.PlannedQuantity(), amountPlaces),
			round(item.ActualQuantity(), amountPlaces),
			round(item.VarianceQuantity(), amountPlaces),
			round(item.UnitPrice(), amountPlaces),
			round(item.PlannedWeight(), weightPlaces),
			round(item.ActualWeight(), weightPlaces),
			round(item.VarianceWeight(), weightPlaces),
			round(item.PlannedValue(), amountPlaces),
			round(item.ActualValue(), amountPlaces),
			round(item.VarianceValue(), amountPlaces),
		}
		if err = f.SetSheetRow(SheetName, cell(1, row), &values); err != nil {
			return err
		}
		row++
	}

	totals := record.Totals()
	totalValues := []any{
		"Total",
		round(totals.PlannedQuantity, amountPlaces),
		round(totals.ActualQuantity, amountPlaces),
		round(totals.VarianceQuantity, amountPlaces),
		nil,
		round(totals.PlannedWeight, weightPlaces),
		round(totals.ActualWeight, weightPlaces),
		round(totals.VarianceWeight, weightPlaces),
		round(totals.PlannedValue, amountPlaces),
		round(totals.ActualValue, amountPlaces),
		round(totals.VarianceValue, amountPlaces),
	}
	if err = f.SetSheetRow(SheetName, cell(1, row), &totalValues); err != nil {
		return err
	}
	if err = f.SetCellStyle(SheetName, cell(1, row), cell(1, row), boldStyle); err != nil {
		return err
	}

	first := headerRow + 1
	for _, span := range []struct {
		from, to int
		style    int
	}{
		{2, 5, amountStyle},
		{6, 8, weightStyle},
		{9, 11, amountStyle},
	} {
		if err = f.SetCellStyle(SheetName, cell(span.from, first), cell(span.to, row), span.style); err != nil {
			return err
		}
	}

	if err = f.SetColWidth(SheetName, "A", "K", 16); err != nil {
		return err
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("write loading report: %w", err)
	}
	return nil
}

// FileName is the download name of an order's report.
func FileName(orderID string) string {
	return fmt.Sprintf("loading-variance-%s.xlsx", orderID)
}

func round(d decimal.Decimal, places int32) float64 {
	return d.Round(places).InexactFloat64()
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func ptr[T any](v T) *T {
	return &v
}
