package bill_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
	"gstbill/internal/validator/bill"
)

func TestInputValidators_Count(t *testing.T) {
	assert.Len(t, bill.InputValidators(), 5)
}

func TestInputValidators_Metadata(t *testing.T) {
	for _, v := range bill.InputValidators() {
		assert.NotEmpty(t, v.RuleKey())
		assert.NotEmpty(t, v.RuleName())
		assert.NotEmpty(t, v.RuleType())
		assert.NotEmpty(t, v.Severity())
	}
}

func TestInput_NonNegativeLineTotal(t *testing.T) {
	v := findValidator("input.line_item.non_negative_total")
	require.NotNil(t, v)
	ctx := context.Background()

	t.Run("pass_positive", func(t *testing.T) {
		results := v.Validate(ctx, validBill())
		require.Len(t, results, 2)
		assert.True(t, results[0].Passed)
		assert.True(t, results[1].Passed)
	})

	t.Run("fail_negative", func(t *testing.T) {
		b := validBill()
		b.Input.Items[0].LineTotal = dec("-10")
		results := v.Validate(ctx, b)
		require.Len(t, results, 2)
		assert.False(t, results[0].Passed)
		assert.Equal(t, "line_items[0].line_total", results[0].FieldPath)
	})
}

func TestInput_TaxRateRange(t *testing.T) {
	v := findValidator("input.line_item.rate_range")
	require.NotNil(t, v)
	ctx := context.Background()

	t.Run("pass_standard", func(t *testing.T) {
		for _, r := range v.Validate(ctx, validBill()) {
			assert.True(t, r.Passed)
		}
	})

	t.Run("pass_missing_rate", func(t *testing.T) {
		b := validBill()
		b.Input.Items[0].TaxRatePercent.Valid = false
		results := v.Validate(ctx, b)
		assert.True(t, results[0].Passed)
	})

	t.Run("fail_above_28", func(t *testing.T) {
		b := validBill()
		b.Input.Items[0].TaxRatePercent = rate("40")
		results := v.Validate(ctx, b)
		assert.False(t, results[0].Passed)
	})

	t.Run("fail_negative", func(t *testing.T) {
		b := validBill()
		b.Input.Items[0].TaxRatePercent = rate("-5")
		results := v.Validate(ctx, b)
		assert.False(t, results[0].Passed)
	})
}

func TestInput_StandardRate(t *testing.T) {
	v := findValidator("input.line_item.standard_rate")
	require.NotNil(t, v)
	ctx := context.Background()
	require.Equal(t, domain.ValidationSeverityWarning, v.Severity())

	t.Run("pass_slabs", func(t *testing.T) {
		b := validBill()
		for _, slab := range []string{"0", "0.25", "3", "5", "12", "18", "28"} {
			b.Input.Items[0].TaxRatePercent = rate(slab)
			results := v.Validate(ctx, b)
			assert.True(t, results[0].Passed, "slab %s", slab)
		}
	})

	t.Run("fail_non_standard", func(t *testing.T) {
		b := validBill()
		b.Input.Items[0].TaxRatePercent = rate("15")
		results := v.Validate(ctx, b)
		assert.False(t, results[0].Passed)
	})
}

func TestInput_JurisdictionsPresent(t *testing.T) {
	v := findValidator("input.jurisdiction.present")
	require.NotNil(t, v)
	ctx := context.Background()

	t.Run("pass_both_set", func(t *testing.T) {
		results := v.Validate(ctx, validBill())
		require.Len(t, results, 2)
		assert.True(t, results[0].Passed)
		assert.True(t, results[1].Passed)
	})

	t.Run("fail_missing_counterparty", func(t *testing.T) {
		b := validBill()
		b.Input.CounterpartyJurisdiction = ""
		results := v.Validate(ctx, b)
		require.Len(t, results, 2)
		assert.True(t, results[0].Passed)
		assert.False(t, results[1].Passed)
		assert.Contains(t, results[1].Message, "treated as interstate")
	})
}

func TestInput_HSNFormat(t *testing.T) {
	v := findValidator("input.line_item.hsn_format")
	require.NotNil(t, v)
	ctx := context.Background()

	tests := []struct {
		name   string
		code   string
		passed bool
	}{
		{"pass_four_digits", "1905", true},
		{"pass_six_digits", "998313", true},
		{"pass_eight_digits", "19053100", true},
		{"pass_missing", "", true},
		{"fail_five_digits", "12345", false},
		{"fail_letters", "HSN-99", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBill()
			b.Input.Items[0].HSNSACCode = tt.code
			results := v.Validate(ctx, b)
			assert.Equal(t, tt.passed, results[0].Passed)
		})
	}
}
