package gst

import (
	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
)

var (
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// roundMoney rounds to two decimal places, half away from zero — the same
// behavior as rounding x*100 to the nearest integer and dividing by 100.
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// CalculateLineTax computes the taxable amount, total tax and CGST/SGST/IGST
// split for a single line item. Items with an absent or non-positive rate are
// exempt: the full line amount is taxable and every tax field is zero.
//
// In inclusive mode the pre-tax amount is back-calculated from the line total;
// in exclusive mode the line total is already pre-tax. Intrastate tax is
// halved into CGST and SGST with each half rounded independently, so a tax
// amount with an odd number of paise leaves the pair one paisa apart from the
// unsplit total. That discrepancy is accepted, not corrected.
func CalculateLineTax(item domain.LineItem, placeOfSupply domain.PlaceOfSupply, inclusive bool) domain.LineTax {
	rate := item.EffectiveRate()
	if rate.Sign() <= 0 {
		return domain.LineTax{
			TaxableAmount: roundMoney(item.LineTotal),
			TaxAmount:     decimal.Zero,
			CGSTAmount:    decimal.Zero,
			SGSTAmount:    decimal.Zero,
			IGSTAmount:    decimal.Zero,
		}
	}

	var taxable, tax decimal.Decimal
	if inclusive {
		taxable = item.LineTotal.Div(one.Add(rate.Div(hundred)))
		tax = item.LineTotal.Sub(taxable)
	} else {
		taxable = item.LineTotal
		tax = item.LineTotal.Mul(rate).Div(hundred)
	}

	out := domain.LineTax{
		TaxableAmount: roundMoney(taxable),
		TaxAmount:     roundMoney(tax),
		CGSTAmount:    decimal.Zero,
		SGSTAmount:    decimal.Zero,
		IGSTAmount:    decimal.Zero,
	}
	if placeOfSupply == domain.PlaceOfSupplyIntrastate {
		half := tax.Div(two)
		out.CGSTAmount = roundMoney(half)
		out.SGSTAmount = roundMoney(half)
	} else {
		out.IGSTAmount = roundMoney(tax)
	}
	return out
}
