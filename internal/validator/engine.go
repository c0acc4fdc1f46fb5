package validator

import (
	"context"
	"log"
	"time"

	"gstbill/internal/domain"
	"gstbill/internal/gst"
	"gstbill/internal/validator/bill"
)

// ReportEntry is a single validation result with its rule metadata attached.
type ReportEntry struct {
	RuleKey       string                    `json:"rule_key"`
	RuleName      string                    `json:"rule_name"`
	RuleType      domain.ValidationRuleType `json:"rule_type"`
	Severity      domain.ValidationSeverity `json:"severity"`
	Passed        bool                      `json:"passed"`
	FieldPath     string                    `json:"field_path"`
	ExpectedValue string                    `json:"expected_value"`
	ActualValue   string                    `json:"actual_value"`
	Message       string                    `json:"message"`
	CheckedAt     time.Time                 `json:"checked_at"`
}

// Summary holds aggregate counts of validation results.
type Summary struct {
	Total    int `json:"total"`
	Passed   int `json:"passed"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Report is the outcome of checking one bill: the computed calculation plus
// every rule result and the derived overall status.
type Report struct {
	Status  domain.ValidationStatus       `json:"status"`
	Summary Summary                       `json:"summary"`
	Results []ReportEntry                 `json:"results"`
	Result  *domain.BillCalculationResult `json:"result"`
}

// Engine runs registered validation rules over a bill.
type Engine struct {
	registry *Registry
}

// NewEngine creates a validation engine backed by the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// CheckBill computes the bill and runs every registered rule over the inputs
// and the result. Validation never alters the calculation: the computed
// result is returned in the report even when the status is invalid.
func (e *Engine) CheckBill(ctx context.Context, input domain.BillInput) *Report {
	result := gst.AggregateBill(input.Items, input.OrgJurisdiction, input.CounterpartyJurisdiction, input.Inclusive)
	b := &bill.Bill{Input: input, Result: &result}

	now := time.Now().UTC()
	report := &Report{Result: &result}
	hasError := false
	hasWarning := false

	for _, v := range e.registry.All() {
		for _, vr := range v.Validate(ctx, b) {
			report.Results = append(report.Results, ReportEntry{
				RuleKey:       v.RuleKey(),
				RuleName:      v.RuleName(),
				RuleType:      v.RuleType(),
				Severity:      v.Severity(),
				Passed:        vr.Passed,
				FieldPath:     vr.FieldPath,
				ExpectedValue: vr.ExpectedValue,
				ActualValue:   vr.ActualValue,
				Message:       vr.Message,
				CheckedAt:     now,
			})
			report.Summary.Total++
			if vr.Passed {
				report.Summary.Passed++
				continue
			}
			if v.Severity() == domain.ValidationSeverityError {
				report.Summary.Errors++
				hasError = true
			} else {
				report.Summary.Warnings++
				hasWarning = true
			}
		}
	}

	switch {
	case hasError:
		report.Status = domain.ValidationStatusInvalid
	case hasWarning:
		report.Status = domain.ValidationStatusWarning
	default:
		report.Status = domain.ValidationStatusValid
	}

	log.Printf("validator.Engine: bill checked — status=%s, results=%d", report.Status, report.Summary.Total)
	return report
}

// NewDefaultEngine creates an engine with every built-in rule registered.
func NewDefaultEngine() *Engine {
	registry := NewRegistry()
	for _, v := range bill.AllBuiltinValidators() {
		registry.Register(v)
	}
	return NewEngine(registry)
}
