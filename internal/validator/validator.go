package validator

import (
	"context"

	"gstbill/internal/domain"
	"gstbill/internal/validator/bill"
)

// Validator is the interface for a single built-in validation rule.
type Validator interface {
	Validate(ctx context.Context, data *bill.Bill) []bill.ValidationResult
	RuleKey() string
	RuleName() string
	RuleType() domain.ValidationRuleType
	Severity() domain.ValidationSeverity
}
