package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gstbill/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rate(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func noRate() decimal.NullDecimal {
	return decimal.NullDecimal{}
}

func item(lineTotal, ratePercent string) domain.LineItem {
	return domain.LineItem{LineTotal: dec(lineTotal), TaxRatePercent: rate(ratePercent)}
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "want %s, got %s", want, got.String())
}
