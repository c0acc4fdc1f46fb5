package gst

import (
	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
)

// rateKey returns the breakdown grouping key for a nominal tax rate: the rate
// in basis points. Keying the map on an integer keeps 18, 18.0 and 18.00 in
// one entry and rules out floating-point grouping failures.
func rateKey(rate decimal.Decimal) int64 {
	return rate.Mul(hundred).IntPart()
}

// AggregateBill computes the complete bill: the Place of Supply is resolved
// once and applied uniformly to every line, per-line taxes are grouped by
// nominal rate into the breakdown, and the bill totals are summed.
//
// Totals are rounded again after summation on top of the per-line rounding.
// This double rounding matches how the amounts appear on a printed invoice
// and can drift one paisa from an unrounded recomputation.
//
// An empty item list yields an all-zero result carrying whatever Place of
// Supply the two jurisdictions resolve to.
func AggregateBill(items []domain.LineItem, org, counterparty string, inclusive bool) domain.BillCalculationResult {
	placeOfSupply := ResolvePlaceOfSupply(org, counterparty)

	breakdown := make(map[int64]*domain.TaxBreakdownEntry)
	subtotal := decimal.Zero
	cgstTotal := decimal.Zero
	sgstTotal := decimal.Zero
	igstTotal := decimal.Zero

	for i := range items {
		item := &items[i]
		lineTax := CalculateLineTax(*item, placeOfSupply, inclusive)
		rate := item.EffectiveRate()

		key := rateKey(rate)
		entry, ok := breakdown[key]
		if !ok {
			entry = &domain.TaxBreakdownEntry{Rate: rate}
			breakdown[key] = entry
		}
		entry.TaxableAmount = entry.TaxableAmount.Add(lineTax.TaxableAmount)
		entry.CGSTAmount = entry.CGSTAmount.Add(lineTax.CGSTAmount)
		entry.SGSTAmount = entry.SGSTAmount.Add(lineTax.SGSTAmount)
		entry.IGSTAmount = entry.IGSTAmount.Add(lineTax.IGSTAmount)
		entry.TaxAmount = entry.TaxAmount.Add(lineTax.TaxAmount)

		subtotal = subtotal.Add(lineTax.TaxableAmount)
		cgstTotal = cgstTotal.Add(lineTax.CGSTAmount)
		sgstTotal = sgstTotal.Add(lineTax.SGSTAmount)
		igstTotal = igstTotal.Add(lineTax.IGSTAmount)
	}

	subtotal = roundMoney(subtotal)
	cgstTotal = roundMoney(cgstTotal)
	sgstTotal = roundMoney(sgstTotal)
	igstTotal = roundMoney(igstTotal)
	totalTax := roundMoney(cgstTotal.Add(sgstTotal).Add(igstTotal))
	grandTotal := roundMoney(subtotal.Add(totalTax))

	return domain.BillCalculationResult{
		PlaceOfSupply: placeOfSupply,
		Subtotal:      subtotal,
		CGSTTotal:     cgstTotal,
		SGSTTotal:     sgstTotal,
		IGSTTotal:     igstTotal,
		TotalTax:      totalTax,
		GrandTotal:    grandTotal,
		Breakdown:     breakdown,
	}
}
