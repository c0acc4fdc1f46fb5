package bill_test

import (
	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
	"gstbill/internal/gst"
	"gstbill/internal/validator/bill"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rate(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func item(lineTotal, ratePercent, hsn string) domain.LineItem {
	return domain.LineItem{
		LineTotal:      dec(lineTotal),
		TaxRatePercent: rate(ratePercent),
		HSNSACCode:     hsn,
	}
}

// validBill returns a computed two-line intrastate bill that passes every
// built-in rule.
func validBill() *bill.Bill {
	input := domain.BillInput{
		Items: []domain.LineItem{
			item("118", "18", "998313"),
			item("105", "5", "1905"),
		},
		OrgJurisdiction:          "29",
		CounterpartyJurisdiction: "29",
		Inclusive:                true,
	}
	result := gst.AggregateBill(input.Items, input.OrgJurisdiction, input.CounterpartyJurisdiction, input.Inclusive)
	return &bill.Bill{Input: input, Result: &result}
}

func findValidator(key string) *bill.BuiltinValidator {
	for _, v := range bill.AllBuiltinValidators() {
		if v.RuleKey() == key {
			return v
		}
	}
	return nil
}
