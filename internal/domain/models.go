package domain

import "github.com/shopspring/decimal"

// LineItem is a single billable line on a purchase bill or sales invoice.
// LineTotal is either GST-inclusive or GST-exclusive; which one is decided by
// the flag passed to the calculation, not stored on the item.
type LineItem struct {
	LineTotal      decimal.Decimal     `json:"line_total"`
	TaxRatePercent decimal.NullDecimal `json:"tax_rate_percent"`
	HSNSACCode     string              `json:"hsn_sac_code"`
}

// EffectiveRate returns the item's tax rate, or zero when the rate is absent.
func (li *LineItem) EffectiveRate() decimal.Decimal {
	if !li.TaxRatePercent.Valid {
		return decimal.Zero
	}
	return li.TaxRatePercent.Decimal
}

// LineTax holds the computed tax fields for one line item, each rounded to
// two decimal places.
type LineTax struct {
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	CGSTAmount    decimal.Decimal `json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `json:"sgst_amount"`
	IGSTAmount    decimal.Decimal `json:"igst_amount"`
}

// TaxBreakdownEntry accumulates contributions of every line item sharing one
// nominal tax rate.
type TaxBreakdownEntry struct {
	Rate          decimal.Decimal `json:"rate"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	CGSTAmount    decimal.Decimal `json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `json:"sgst_amount"`
	IGSTAmount    decimal.Decimal `json:"igst_amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
}

// BillCalculationResult is the complete output of a bill calculation.
// Breakdown is keyed by the rate in basis points (rate × 100), so 18, 18.0
// and 18.00 share a single entry regardless of how the rate was written.
type BillCalculationResult struct {
	PlaceOfSupply PlaceOfSupply                `json:"place_of_supply"`
	Subtotal      decimal.Decimal              `json:"subtotal"`
	CGSTTotal     decimal.Decimal              `json:"cgst_total"`
	SGSTTotal     decimal.Decimal              `json:"sgst_total"`
	IGSTTotal     decimal.Decimal              `json:"igst_total"`
	TotalTax      decimal.Decimal              `json:"total_tax"`
	GrandTotal    decimal.Decimal              `json:"grand_total"`
	Breakdown     map[int64]*TaxBreakdownEntry `json:"breakdown"`
}

// BillInput bundles the caller-supplied inputs for one bill calculation.
type BillInput struct {
	Items                    []LineItem `json:"line_items"`
	OrgJurisdiction          string     `json:"org_jurisdiction"`
	CounterpartyJurisdiction string     `json:"counterparty_jurisdiction"`
	Inclusive                bool       `json:"inclusive"`
}
