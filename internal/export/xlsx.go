package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"gstbill/internal/domain"
)

const sheetName = "Bill"

// WriteXLSX renders the computed bill as an Excel workbook with the same row
// model as the CSV export: breakdown rows by ascending rate, a TOTAL row, and
// the summary block.
func WriteXLSX(res *domain.BillCalculationResult, w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	rowNum := 1
	writeRow := func(cells []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return err
		}
		rowNum++
		return nil
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := writeRow(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, key := range sortedRateKeys(res.Breakdown) {
		entry := res.Breakdown[key]
		row := []interface{}{
			entry.Rate.String(),
			formatMoney(entry.TaxableAmount),
			formatMoney(entry.CGSTAmount),
			formatMoney(entry.SGSTAmount),
			formatMoney(entry.IGSTAmount),
			formatMoney(entry.TaxAmount),
		}
		if err := writeRow(row); err != nil {
			return fmt.Errorf("writing breakdown row: %w", err)
		}
	}

	rows := [][]interface{}{
		{
			"TOTAL",
			formatMoney(res.Subtotal),
			formatMoney(res.CGSTTotal),
			formatMoney(res.SGSTTotal),
			formatMoney(res.IGSTTotal),
			formatMoney(res.TotalTax),
		},
		{"Place of Supply", string(res.PlaceOfSupply)},
		{"Subtotal", formatMoney(res.Subtotal)},
		{"Total Tax", formatMoney(res.TotalTax)},
		{"Grand Total", formatMoney(res.GrandTotal)},
	}
	for _, row := range rows {
		if err := writeRow(row); err != nil {
			return fmt.Errorf("writing totals row: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
