package bill

import (
	"context"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
)

// Standard GST rate slabs, keyed by basis points.
var standardRates = map[int64]bool{
	0: true, 25: true, 300: true, 500: true, 1200: true, 1800: true, 2800: true,
}

// maxRatePercent is the highest statutory GST slab.
var maxRatePercent = decimal.NewFromInt(28)

// hsnSACPattern matches a 4, 6 or 8 digit HSN/SAC classification code.
var hsnSACPattern = regexp.MustCompile(`^([0-9]{4}|[0-9]{6}|[0-9]{8})$`)

// inputValidator checks caller-supplied bill inputs before calculation.
// The calculation engine itself stays permissive; these rules only report.
type inputValidator struct {
	ruleKey  string
	ruleName string
	ruleType domain.ValidationRuleType
	severity domain.ValidationSeverity
	validate func(*Bill) []ValidationResult
}

func (v *inputValidator) RuleKey() string                     { return v.ruleKey }
func (v *inputValidator) RuleName() string                    { return v.ruleName }
func (v *inputValidator) RuleType() domain.ValidationRuleType { return v.ruleType }
func (v *inputValidator) Severity() domain.ValidationSeverity { return v.severity }

func (v *inputValidator) Validate(_ context.Context, data *Bill) []ValidationResult {
	return v.validate(data)
}

// InputValidators returns all input-boundary validators.
func InputValidators() []*inputValidator {
	return []*inputValidator{
		{
			ruleKey: "input.line_item.non_negative_total", ruleName: "Input: Non-Negative Line Total",
			ruleType: domain.ValidationRuleRangeCheck, severity: domain.ValidationSeverityError,
			validate: func(b *Bill) []ValidationResult {
				results := make([]ValidationResult, 0, len(b.Input.Items))
				for i := range b.Input.Items {
					item := &b.Input.Items[i]
					fp := fmt.Sprintf("line_items[%d].line_total", i)
					passed := item.LineTotal.Sign() >= 0
					msg := fmt.Sprintf("Input: Non-Negative Line Total: %s is non-negative", fp)
					if !passed {
						msg = fmt.Sprintf("Input: Non-Negative Line Total: %s is negative (%s)", fp, fmtd(item.LineTotal))
					}
					results = append(results, ValidationResult{
						Passed: passed, FieldPath: fp,
						ExpectedValue: ">= 0", ActualValue: fmtd(item.LineTotal), Message: msg,
					})
				}
				return results
			},
		},
		{
			ruleKey: "input.line_item.rate_range", ruleName: "Input: Tax Rate Range",
			ruleType: domain.ValidationRuleRangeCheck, severity: domain.ValidationSeverityError,
			validate: func(b *Bill) []ValidationResult {
				results := make([]ValidationResult, 0, len(b.Input.Items))
				for i := range b.Input.Items {
					item := &b.Input.Items[i]
					fp := fmt.Sprintf("line_items[%d].tax_rate_percent", i)
					if !item.TaxRatePercent.Valid {
						results = append(results, ValidationResult{
							Passed: true, FieldPath: fp,
							Message: "Input: Tax Rate Range: rate missing, item is tax-exempt",
						})
						continue
					}
					rate := item.TaxRatePercent.Decimal
					passed := rate.Sign() >= 0 && rate.LessThanOrEqual(maxRatePercent)
					msg := fmt.Sprintf("Input: Tax Rate Range: %s is within 0-28", fp)
					if !passed {
						msg = fmt.Sprintf("Input: Tax Rate Range: %s is outside 0-28 (%s)", fp, rate.String())
					}
					results = append(results, ValidationResult{
						Passed: passed, FieldPath: fp,
						ExpectedValue: "0 <= rate <= 28", ActualValue: rate.String(), Message: msg,
					})
				}
				return results
			},
		},
		{
			ruleKey: "input.line_item.standard_rate", ruleName: "Input: Standard GST Rate",
			ruleType: domain.ValidationRuleRangeCheck, severity: domain.ValidationSeverityWarning,
			validate: func(b *Bill) []ValidationResult {
				results := make([]ValidationResult, 0, len(b.Input.Items))
				for i := range b.Input.Items {
					item := &b.Input.Items[i]
					fp := fmt.Sprintf("line_items[%d].tax_rate_percent", i)
					if !item.TaxRatePercent.Valid {
						results = append(results, ValidationResult{
							Passed: true, FieldPath: fp,
							Message: "Input: Standard GST Rate: rate missing, skipping",
						})
						continue
					}
					rate := item.TaxRatePercent.Decimal
					passed := standardRates[rate.Mul(decimal.NewFromInt(100)).IntPart()]
					msg := fmt.Sprintf("Input: Standard GST Rate: %s is a standard slab", fp)
					if !passed {
						msg = fmt.Sprintf("Input: Standard GST Rate: %s has non-standard rate %s", fp, rate.String())
					}
					results = append(results, ValidationResult{
						Passed: passed, FieldPath: fp,
						ExpectedValue: "one of {0, 0.25, 3, 5, 12, 18, 28}",
						ActualValue:   rate.String(), Message: msg,
					})
				}
				return results
			},
		},
		{
			ruleKey: "input.jurisdiction.present", ruleName: "Input: Jurisdictions Present",
			ruleType: domain.ValidationRuleCrossField, severity: domain.ValidationSeverityWarning,
			validate: func(b *Bill) []ValidationResult {
				var results []ValidationResult
				pairs := []struct {
					fieldPath string
					value     string
				}{
					{"org_jurisdiction", b.Input.OrgJurisdiction},
					{"counterparty_jurisdiction", b.Input.CounterpartyJurisdiction},
				}
				for _, p := range pairs {
					passed := p.value != ""
					msg := fmt.Sprintf("Input: Jurisdictions Present: %s is set", p.fieldPath)
					if !passed {
						msg = fmt.Sprintf("Input: Jurisdictions Present: %s is missing, bill is treated as interstate", p.fieldPath)
					}
					results = append(results, ValidationResult{
						Passed: passed, FieldPath: p.fieldPath,
						ExpectedValue: "non-empty state code or name",
						ActualValue:   p.value, Message: msg,
					})
				}
				return results
			},
		},
		{
			ruleKey: "input.line_item.hsn_format", ruleName: "Input: HSN/SAC Format",
			ruleType: domain.ValidationRuleFormatCheck, severity: domain.ValidationSeverityWarning,
			validate: func(b *Bill) []ValidationResult {
				results := make([]ValidationResult, 0, len(b.Input.Items))
				for i := range b.Input.Items {
					item := &b.Input.Items[i]
					fp := fmt.Sprintf("line_items[%d].hsn_sac_code", i)
					if item.HSNSACCode == "" {
						results = append(results, ValidationResult{
							Passed: true, FieldPath: fp,
							Message: "Input: HSN/SAC Format: code missing, skipping",
						})
						continue
					}
					passed := hsnSACPattern.MatchString(item.HSNSACCode)
					msg := fmt.Sprintf("Input: HSN/SAC Format: %s is a valid 4/6/8 digit code", fp)
					if !passed {
						msg = fmt.Sprintf("Input: HSN/SAC Format: %s is not a 4/6/8 digit code (%q)", fp, item.HSNSACCode)
					}
					results = append(results, ValidationResult{
						Passed: passed, FieldPath: fp,
						ExpectedValue: "4, 6 or 8 digits",
						ActualValue:   item.HSNSACCode, Message: msg,
					})
				}
				return results
			},
		},
	}
}
