package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row for the per-rate breakdown table.
var columns = []string{
	"Rate (%)",
	"Taxable Amount",
	"CGST",
	"SGST",
	"IGST",
	"Total Tax",
}

// Writer wraps csv.Writer for exporting a computed bill as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteBill writes the breakdown table followed by the bill totals: one row
// per distinct tax rate (ascending), a TOTAL row, and summary rows for the
// Place of Supply and grand total.
func (w *Writer) WriteBill(res *domain.BillCalculationResult) error {
	if err := w.csv.Write(columns); err != nil {
		return err
	}

	for _, key := range sortedRateKeys(res.Breakdown) {
		entry := res.Breakdown[key]
		row := []string{
			entry.Rate.String(),
			formatMoney(entry.TaxableAmount),
			formatMoney(entry.CGSTAmount),
			formatMoney(entry.SGSTAmount),
			formatMoney(entry.IGSTAmount),
			formatMoney(entry.TaxAmount),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}

	totals := []string{
		"TOTAL",
		formatMoney(res.Subtotal),
		formatMoney(res.CGSTTotal),
		formatMoney(res.SGSTTotal),
		formatMoney(res.IGSTTotal),
		formatMoney(res.TotalTax),
	}
	if err := w.csv.Write(totals); err != nil {
		return err
	}

	summary := [][]string{
		{"Place of Supply", string(res.PlaceOfSupply)},
		{"Subtotal", formatMoney(res.Subtotal)},
		{"Total Tax", formatMoney(res.TotalTax)},
		{"Grand Total", formatMoney(res.GrandTotal)},
	}
	for _, row := range summary {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// sortedRateKeys returns the breakdown keys in ascending rate order.
func sortedRateKeys(breakdown map[int64]*domain.TaxBreakdownEntry) []int64 {
	keys := make([]int64, 0, len(breakdown))
	for k := range breakdown {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func formatMoney(v decimal.Decimal) string {
	return v.StringFixed(2)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a bill name for use in a filename. Replaces
// non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized export filename.
// Format: {sanitized_bill_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(billName string, format domain.ExportFormat) string {
	sanitized := SanitizeFilename(billName)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", sanitized, date, format)
}
