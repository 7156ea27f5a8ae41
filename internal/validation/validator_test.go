package validation

import (
	"strings"
	"testing"

	"product-catalog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() model.ProductInput {
	return model.ProductInput{
		Name:        "Pen",
		Description: "Blue pen",
		Price:       model.NewPriceInput("2.50"),
	}
}

func rulesFor(violations []model.Violation, field string) []model.Rule {
	var rules []model.Rule
	for _, v := range violations {
		if v.Field == field {
			rules = append(rules, v.Rule)
		}
	}
	return rules
}

func TestValidator_Validate_Valid(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		input func() model.ProductInput
	}{
		{
			name:  "Plain product",
			input: validInput,
		},
		{
			name: "Integer price",
			input: func() model.ProductInput {
				in := validInput()
				in.Price = model.NewPriceInput("5")
				return in
			},
		},
		{
			name: "Scientific notation price",
			input: func() model.ProductInput {
				in := validInput()
				in.Price = model.NewPriceInput("1e3")
				return in
			},
		},
		{
			name: "Trailing zeros are not significant",
			input: func() model.ProductInput {
				in := validInput()
				in.Price = model.NewPriceInput("2.500")
				return in
			},
		},
		{
			name: "Name at the length limit in multibyte characters",
			input: func() model.ProductInput {
				in := validInput()
				in.Name = strings.Repeat("é", MaxNameLength)
				return in
			},
		},
		{
			name: "Smallest positive price",
			input: func() model.ProductInput {
				in := validInput()
				in.Price = model.NewPriceInput("0.01")
				return in
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, v.Validate(tt.input()))
		})
	}
}

func TestValidator_Validate_Violations(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		modify   func(in *model.ProductInput)
		field    string
		expected []model.Rule
	}{
		{
			name:     "Empty name",
			modify:   func(in *model.ProductInput) { in.Name = "" },
			field:    "name",
			expected: []model.Rule{model.RuleRequired},
		},
		{
			name:     "Whitespace name",
			modify:   func(in *model.ProductInput) { in.Name = " \t\n" },
			field:    "name",
			expected: []model.Rule{model.RuleRequired},
		},
		{
			name:     "Name too long",
			modify:   func(in *model.ProductInput) { in.Name = strings.Repeat("a", MaxNameLength+1) },
			field:    "name",
			expected: []model.Rule{model.RuleTooLong},
		},
		{
			name:     "Long blank name breaks both rules",
			modify:   func(in *model.ProductInput) { in.Name = strings.Repeat(" ", MaxNameLength+1) },
			field:    "name",
			expected: []model.Rule{model.RuleRequired, model.RuleTooLong},
		},
		{
			name:     "Empty description",
			modify:   func(in *model.ProductInput) { in.Description = "   " },
			field:    "description",
			expected: []model.Rule{model.RuleRequired},
		},
		{
			name:     "Missing price",
			modify:   func(in *model.ProductInput) { in.Price = model.PriceInput{} },
			field:    "price",
			expected: []model.Rule{model.RuleRequired},
		},
		{
			name:     "Price is not a number",
			modify:   func(in *model.ProductInput) { in.Price = model.NewPriceInput("abc") },
			field:    "price",
			expected: []model.Rule{model.RuleNotANumber},
		},
		{
			name:     "Price is a boolean literal",
			modify:   func(in *model.ProductInput) { in.Price = model.NewPriceInput("true") },
			field:    "price",
			expected: []model.Rule{model.RuleNotANumber},
		},
		{
			name:     "Price is infinite",
			modify:   func(in *model.ProductInput) { in.Price = model.NewPriceInput("Infinity") },
			field:    "price",
			expected: []model.Rule{model.RuleNotANumber},
		},
		{
			name:     "Price overflows a float",
			modify:   func(in *model.ProductInput) { in.Price = model.NewPriceInput("1e400") },
			field:    "price",
			expected: []model.Rule{model.RuleNotANumber},
		},
		{
			name:     "Price with a huge exponent",
			modify:   func(in *model.ProductInput) { in.Price = model.NewPriceInput("1e2000000000") },
			field:    "price",
			expected: []model.Rule{model.RuleNotANumber},
		},
		{
			name:     "Price underflows to zero",
			modify:   func(in *model.ProductInput) { in.Price = model.NewPriceInput("1e-400") },
			field:    "price",
			expected: []model.Rule{model.RuleNotPositive},
		},
		{
			name:     "Price with a huge negative exponent",
			modify:   func(in *model.ProductInput) { in.Price = model.NewPriceInput("1e-2000000000") },
			field:    "price",
			expected: []model.Rule{model.RuleNotPositive},
		},
		{
			name:     "Zero with a huge negative exponent",
			modify:   func(in *model.ProductInput) { in.Price = model.NewPriceInput("0e-2000000000") },
			field:    "price",
			expected: []model.Rule{model.RuleNotPositive},
		},
		{
			name:     "Zero price",
			modify:   func(in *model.ProductInput) { in.Price = model.NewPriceInput("0") },
			field:    "price",
			expected: []model.Rule{model.RuleNotPositive},
		},
		{
			name:     "Negative price",
			modify:   func(in *model.ProductInput) { in.Price = model.NewPriceInput("-3") },
			field:    "price",
			expected: []model.Rule{model.RuleNotPositive},
		},
		{
			name:     "Too many decimals",
			modify:   func(in *model.ProductInput) { in.Price = model.NewPriceInput("1.999") },
			field:    "price",
			expected: []model.Rule{model.RuleTooManyDecimals},
		},
		{
			name:     "Negative with too many decimals",
			modify:   func(in *model.ProductInput) { in.Price = model.NewPriceInput("-1.999") },
			field:    "price",
			expected: []model.Rule{model.RuleNotPositive, model.RuleTooManyDecimals},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.modify(&in)

			violations := v.Validate(in)

			require.Len(t, violations, len(tt.expected))
			assert.Equal(t, tt.expected, rulesFor(violations, tt.field))
		})
	}
}

func TestValidator_Validate_AllFieldsEvaluated(t *testing.T) {
	v := New()

	violations := v.Validate(model.ProductInput{})

	require.Len(t, violations, 3)
	assert.Equal(t, []model.Rule{model.RuleRequired}, rulesFor(violations, "name"))
	assert.Equal(t, []model.Rule{model.RuleRequired}, rulesFor(violations, "description"))
	assert.Equal(t, []model.Rule{model.RuleRequired}, rulesFor(violations, "price"))
}

func TestValidator_Validate_Messages(t *testing.T) {
	v := New()

	in := validInput()
	in.Price = model.NewPriceInput("1.999")

	violations := v.Validate(in)

	require.Len(t, violations, 1)
	assert.Equal(t, model.Violation{
		Field:   "price",
		Rule:    model.RuleTooManyDecimals,
		Message: "Price must have at most 2 decimal places",
	}, violations[0])
}
