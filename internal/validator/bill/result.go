package bill

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
)

// resultValidator checks arithmetic invariants on a computed calculation.
type resultValidator struct {
	ruleKey  string
	ruleName string
	ruleType domain.ValidationRuleType
	severity domain.ValidationSeverity
	validate func(*Bill) []ValidationResult
}

func (v *resultValidator) RuleKey() string                     { return v.ruleKey }
func (v *resultValidator) RuleName() string                    { return v.ruleName }
func (v *resultValidator) RuleType() domain.ValidationRuleType { return v.ruleType }
func (v *resultValidator) Severity() domain.ValidationSeverity { return v.severity }

func (v *resultValidator) Validate(_ context.Context, data *Bill) []ValidationResult {
	return v.validate(data)
}

func sumResult(passed bool, fieldPath string, expected, actual decimal.Decimal, ruleName string) ValidationResult {
	msg := fmt.Sprintf("%s: %s calculation matches", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s calculation mismatch (expected %s, got %s)", ruleName, fieldPath, fmtd(expected), fmtd(actual))
	}
	return ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: fmtd(expected), ActualValue: fmtd(actual), Message: msg,
	}
}

// ResultValidators returns all calculation-invariant validators.
func ResultValidators() []*resultValidator {
	return []*resultValidator{
		{
			ruleKey: "result.totals.grand_total", ruleName: "Result: Grand Total",
			ruleType: domain.ValidationRuleSumCheck, severity: domain.ValidationSeverityError,
			validate: func(b *Bill) []ValidationResult {
				expected := b.Result.Subtotal.Add(b.Result.TotalTax)
				passed := approxEqual(b.Result.GrandTotal, expected)
				return []ValidationResult{sumResult(passed, "grand_total", expected, b.Result.GrandTotal, "Result: Grand Total")}
			},
		},
		{
			ruleKey: "result.totals.total_tax", ruleName: "Result: Total Tax",
			ruleType: domain.ValidationRuleSumCheck, severity: domain.ValidationSeverityError,
			validate: func(b *Bill) []ValidationResult {
				expected := b.Result.CGSTTotal.Add(b.Result.SGSTTotal).Add(b.Result.IGSTTotal)
				passed := approxEqual(b.Result.TotalTax, expected)
				return []ValidationResult{sumResult(passed, "total_tax", expected, b.Result.TotalTax, "Result: Total Tax")}
			},
		},
		{
			ruleKey: "result.place_of_supply.tax_exclusivity", ruleName: "Result: Place of Supply Tax Exclusivity",
			ruleType: domain.ValidationRuleCrossField, severity: domain.ValidationSeverityError,
			validate: func(b *Bill) []ValidationResult {
				if b.Result.PlaceOfSupply == domain.PlaceOfSupplyIntrastate {
					passed := b.Result.IGSTTotal.IsZero()
					msg := "Result: Place of Supply Tax Exclusivity: intrastate bill carries no IGST"
					if !passed {
						msg = fmt.Sprintf("Result: Place of Supply Tax Exclusivity: intrastate bill has IGST %s", fmtd(b.Result.IGSTTotal))
					}
					return []ValidationResult{{
						Passed: passed, FieldPath: "igst_total",
						ExpectedValue: "0.00", ActualValue: fmtd(b.Result.IGSTTotal), Message: msg,
					}}
				}
				passed := b.Result.CGSTTotal.IsZero() && b.Result.SGSTTotal.IsZero()
				msg := "Result: Place of Supply Tax Exclusivity: interstate bill carries no CGST/SGST"
				if !passed {
					msg = fmt.Sprintf("Result: Place of Supply Tax Exclusivity: interstate bill has CGST %s, SGST %s", fmtd(b.Result.CGSTTotal), fmtd(b.Result.SGSTTotal))
				}
				return []ValidationResult{{
					Passed: passed, FieldPath: "cgst_total",
					ExpectedValue: "CGST=0.00, SGST=0.00",
					ActualValue:   fmt.Sprintf("CGST=%s, SGST=%s", fmtd(b.Result.CGSTTotal), fmtd(b.Result.SGSTTotal)),
					Message:       msg,
				}}
			},
		},
		{
			ruleKey: "result.breakdown.reconciles", ruleName: "Result: Breakdown Reconciles",
			ruleType: domain.ValidationRuleSumCheck, severity: domain.ValidationSeverityError,
			validate: func(b *Bill) []ValidationResult {
				taxable := decimal.Zero
				tax := decimal.Zero
				for _, entry := range b.Result.Breakdown {
					taxable = taxable.Add(entry.TaxableAmount)
					// Sum the split components, not entry.TaxAmount: the
					// independent rounding of CGST/SGST halves makes the
					// unsplit tax drift a paisa per line on intrastate bills.
					tax = tax.Add(entry.CGSTAmount).Add(entry.SGSTAmount).Add(entry.IGSTAmount)
				}
				return []ValidationResult{
					sumResult(approxEqual(taxable, b.Result.Subtotal), "subtotal", taxable, b.Result.Subtotal, "Result: Breakdown Reconciles"),
					sumResult(approxEqual(tax, b.Result.TotalTax), "total_tax", tax, b.Result.TotalTax, "Result: Breakdown Reconciles"),
				}
			},
		},
	}
}
