package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceInput_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
		isSet    bool
	}{
		{name: "Number", body: `{"price": 2.50}`, expected: "2.50", isSet: true},
		{name: "Numeric string", body: `{"price": "19.99"}`, expected: "19.99", isSet: true},
		{name: "Padded string", body: `{"price": " 7 "}`, expected: "7", isSet: true},
		{name: "Scientific notation", body: `{"price": 1e3}`, expected: "1e3", isSet: true},
		{name: "Non numeric string", body: `{"price": "abc"}`, expected: "abc", isSet: true},
		{name: "Boolean", body: `{"price": true}`, expected: "true", isSet: true},
		{name: "Null", body: `{"price": null}`, expected: "", isSet: false},
		{name: "Missing", body: `{}`, expected: "", isSet: false},
		{name: "Empty string", body: `{"price": ""}`, expected: "", isSet: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in ProductInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))

			assert.Equal(t, tt.expected, in.Price.Raw)
			assert.Equal(t, tt.isSet, in.Price.IsSet())
		})
	}
}

func TestProductInput_ToProduct(t *testing.T) {
	in := ProductInput{
		Name:        "Pen",
		Description: "Blue pen",
		Price:       NewPriceInput("19.99"),
	}

	product, err := in.ToProduct()

	require.NoError(t, err)
	assert.Equal(t, int64(0), product.ID)
	assert.Equal(t, "Pen", product.Name)
	assert.Equal(t, "Blue pen", product.Description)
	assert.True(t, decimal.RequireFromString("19.99").Equal(product.Price))
}

func TestProductInput_ToProduct_InvalidPrice(t *testing.T) {
	in := ProductInput{Name: "Pen", Description: "Blue pen", Price: NewPriceInput("abc")}

	product, err := in.ToProduct()

	require.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "invalid price")
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expected    string
		expectedErr error
	}{
		{name: "Plain decimal", raw: "19.99", expected: "19.99"},
		{name: "Scientific notation", raw: "1e3", expected: "1000"},
		{name: "Largest float magnitude", raw: "1e308", expected: "1e308"},
		{name: "Beyond float range", raw: "1e400", expectedErr: ErrPriceOutOfRange},
		{name: "Huge exponent", raw: "1e2000000000", expectedErr: ErrPriceOutOfRange},
		{name: "Below float range becomes zero", raw: "1e-400", expected: "0"},
		{name: "Huge negative exponent becomes zero", raw: "1e-2000000000", expected: "0"},
		{name: "Zero with huge exponent", raw: "0e-2000000000", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParsePrice(tt.raw)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(d), "got %s", d)
			assert.GreaterOrEqual(t, d.Exponent(), int32(-400))
		})
	}
}

func TestProductInput_ToProduct_OutOfRangePrice(t *testing.T) {
	in := ProductInput{Name: "Pen", Description: "Blue pen", Price: NewPriceInput("1e100000000")}

	product, err := in.ToProduct()

	require.ErrorIs(t, err, ErrPriceOutOfRange)
	assert.Nil(t, product)
}

func TestProduct_MarshalJSON_PriceIsNumber(t *testing.T) {
	product := Product{
		ID:          7,
		Name:        "Pen",
		Description: "Blue pen",
		Price:       decimal.RequireFromString("2.50"),
	}

	data, err := json.Marshal(product)

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Pen","description":"Blue pen","price":2.5}`, string(data))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Violations: []Violation{
		{Field: "name", Rule: RuleRequired, Message: "Product name is required"},
		{Field: "price", Rule: RuleNotPositive, Message: "Price must be a positive number"},
	}}

	assert.Equal(t,
		"validation failed: name: Product name is required; price: Price must be a positive number",
		err.Error())
}
