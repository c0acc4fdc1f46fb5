package bill

import (
	"context"

	"gstbill/internal/domain"
)

// BuiltinValidator wraps a validator function and its metadata for the registry.
type BuiltinValidator struct {
	key      string
	name     string
	ruleType domain.ValidationRuleType
	sev      domain.ValidationSeverity
	fn       func(context.Context, *Bill) []ValidationResult
}

func (b *BuiltinValidator) Validate(ctx context.Context, data *Bill) []ValidationResult {
	return b.fn(ctx, data)
}
func (b *BuiltinValidator) RuleKey() string                     { return b.key }
func (b *BuiltinValidator) RuleName() string                    { return b.name }
func (b *BuiltinValidator) RuleType() domain.ValidationRuleType { return b.ruleType }
func (b *BuiltinValidator) Severity() domain.ValidationSeverity { return b.sev }

// AllBuiltinValidators returns all built-in validators for bill calculations.
func AllBuiltinValidators() []*BuiltinValidator {
	inputVals := InputValidators()
	resultVals := ResultValidators()
	all := make([]*BuiltinValidator, 0, len(inputVals)+len(resultVals))

	for _, v := range inputVals {
		all = append(all, &BuiltinValidator{
			key: v.RuleKey(), name: v.RuleName(),
			ruleType: v.RuleType(), sev: v.Severity(),
			fn: v.Validate,
		})
	}

	for _, v := range resultVals {
		all = append(all, &BuiltinValidator{
			key: v.RuleKey(), name: v.RuleName(),
			ruleType: v.RuleType(), sev: v.Severity(),
			fn: v.Validate,
		})
	}

	return all
}
