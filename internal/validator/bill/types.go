package bill

import (
	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
)

// Bill is the unit of validation: the caller-supplied inputs together with
// the calculation result computed from them.
type Bill struct {
	Input  domain.BillInput
	Result *domain.BillCalculationResult
}

// ValidationResult is the outcome of one rule applied to one field.
type ValidationResult struct {
	Passed        bool   `json:"passed"`
	FieldPath     string `json:"field_path"`
	ExpectedValue string `json:"expected_value"`
	ActualValue   string `json:"actual_value"`
	Message       string `json:"message"`
}

// moneyTolerance absorbs the one-paisa drift the documented double rounding
// can introduce between a stored total and its recomputation.
var moneyTolerance = decimal.NewFromFloat(0.01)

func approxEqual(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(moneyTolerance)
}

func fmtd(v decimal.Decimal) string {
	return v.StringFixed(2)
}
