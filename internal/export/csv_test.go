package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
	"gstbill/internal/gst"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func computedBill(t *testing.T) *domain.BillCalculationResult {
	t.Helper()
	items := []domain.LineItem{
		{LineTotal: dec("500"), TaxRatePercent: decimal.NullDecimal{}},
		{LineTotal: dec("100"), TaxRatePercent: decimal.NullDecimal{Decimal: dec("18"), Valid: true}},
		{LineTotal: dec("200"), TaxRatePercent: decimal.NullDecimal{Decimal: dec("5"), Valid: true}},
	}
	res := gst.AggregateBill(items, "29", "07", false)
	return &res
}

func TestWriteBill(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteBill(computedBill(t)))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)

	// header + 3 breakdown rows + TOTAL + 4 summary rows
	require.Len(t, rows, 9)

	assert.Equal(t, columns, rows[0])

	// Breakdown rows come in ascending rate order.
	assert.Equal(t, []string{"0", "500.00", "0.00", "0.00", "0.00", "0.00"}, rows[1])
	assert.Equal(t, []string{"5", "200.00", "0.00", "0.00", "10.00", "10.00"}, rows[2])
	assert.Equal(t, []string{"18", "100.00", "0.00", "0.00", "18.00", "18.00"}, rows[3])

	assert.Equal(t, []string{"TOTAL", "800.00", "0.00", "0.00", "28.00", "28.00"}, rows[4])
	assert.Equal(t, []string{"Place of Supply", "interstate"}, rows[5])
	assert.Equal(t, []string{"Grand Total", "828.00"}, rows[8])
}

func TestWriteBill_Empty(t *testing.T) {
	res := gst.AggregateBill(nil, "29", "29", true)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteBill(&res))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 6) // header + TOTAL + summary, no breakdown rows
	assert.Equal(t, []string{"Place of Supply", "intrastate"}, rows[2])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces", "March Bills 2025", "March_Bills_2025"},
		{"special_chars", "bill:for/acme?", "bill_for_acme"},
		{"collapses_underscores", "a__b___c", "a_b_c"},
		{"trims_underscores", "_bill_", "bill"},
		{"truncates", strings.Repeat("x", 150), strings.Repeat("x", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("March Bills", domain.ExportFormatCSV)
	assert.True(t, strings.HasPrefix(name, "March_Bills_"), name)
	assert.True(t, strings.HasSuffix(name, ".csv"), name)
	assert.Contains(t, name, time.Now().Format("2006-01-02"))

	assert.True(t, strings.HasSuffix(BuildFilename("b", domain.ExportFormatXLSX), ".xlsx"))
}
