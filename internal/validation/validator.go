// Package validation holds the field rules a candidate product must satisfy
// before it may be persisted.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"product-catalog/internal/model"

	"github.com/go-playground/validator/v10"
)

// MaxNameLength is the longest accepted product name, in characters.
const MaxNameLength = 255

// MaxPriceDecimals is the number of fractional digits a price may carry.
const MaxPriceDecimals = 2

// check is one rule of the table: the validator tag that must pass and the
// violation reported when it does not.
type check struct {
	rule    model.Rule
	tag     string
	message string
	// gate stops evaluation of the remaining checks of the field on failure.
	gate bool
}

// fieldRules lists the checks of one field in evaluation order.
type fieldRules struct {
	field  string
	value  func(model.ProductInput) string
	checks []check
}

var productRules = []fieldRules{
	{
		field: "name",
		value: func(in model.ProductInput) string { return in.Name },
		checks: []check{
			{rule: model.RuleRequired, tag: "trimmed_required", message: "Product name is required"},
			{rule: model.RuleTooLong, tag: fmt.Sprintf("max=%d", MaxNameLength), message: fmt.Sprintf("Product name must be at most %d characters", MaxNameLength)},
		},
	},
	{
		field: "description",
		value: func(in model.ProductInput) string { return in.Description },
		checks: []check{
			{rule: model.RuleRequired, tag: "trimmed_required", message: "Product description is required"},
		},
	},
	{
		field: "price",
		value: func(in model.ProductInput) string { return in.Price.Raw },
		checks: []check{
			{rule: model.RuleRequired, tag: "required", message: "Product price is required", gate: true},
			{rule: model.RuleNotANumber, tag: "finite_number", message: "Price must be a number", gate: true},
			{rule: model.RuleNotPositive, tag: "positive_number", message: "Price must be a positive number"},
			{rule: model.RuleTooManyDecimals, tag: fmt.Sprintf("max_decimals=%d", MaxPriceDecimals), message: fmt.Sprintf("Price must have at most %d decimal places", MaxPriceDecimals)},
		},
	},
}

// Validator evaluates the product rule table.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom product tags registered.
func New() *Validator {
	v := validator.New()
	mustRegister(v, "trimmed_required", trimmedRequired)
	mustRegister(v, "finite_number", finiteNumber)
	mustRegister(v, "positive_number", positiveNumber)
	mustRegister(v, "max_decimals", maxDecimals)
	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Validate returns one violation per rule the input breaks. An empty result
// means the input is valid. Every field is checked; within a field, checks
// run in table order and only gating checks stop the rest.
func (v *Validator) Validate(in model.ProductInput) []model.Violation {
	violations := []model.Violation{}

	for _, fr := range productRules {
		value := fr.value(in)
		for _, c := range fr.checks {
			if err := v.validate.Var(value, c.tag); err == nil {
				continue
			}
			violations = append(violations, model.Violation{
				Field:   fr.field,
				Rule:    c.rule,
				Message: c.message,
			})
			if c.gate {
				break
			}
		}
	}

	return violations
}

func trimmedRequired(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// finiteNumber accepts decimal text within the float64 range.
func finiteNumber(fl validator.FieldLevel) bool {
	_, err := model.ParsePrice(fl.Field().String())
	return err == nil
}

func positiveNumber(fl validator.FieldLevel) bool {
	d, err := model.ParsePrice(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// maxDecimals counts significant fractional digits, so "2.50" has one.
func maxDecimals(fl validator.FieldLevel) bool {
	places, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		panic(fmt.Sprintf("validation: bad max_decimals param %q", fl.Param()))
	}
	d, err := model.ParsePrice(fl.Field().String())
	if err != nil {
		return false
	}
	if d.Exponent() >= -int32(places) {
		return true
	}
	return d.Equal(d.Truncate(int32(places)))
}
