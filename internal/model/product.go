package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices leave the API as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a product in the catalogue.
type Product struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
}

// ProductInput represents the request payload for creating a product.
// It is an unsaved candidate and has not been validated.
type ProductInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       PriceInput `json:"price"`
}

// PriceInput holds a submitted price exactly as it was written, so that
// decimal places are judged on the submitted digits rather than on a float.
// Both JSON numbers and numeric strings are accepted.
type PriceInput struct {
	Raw string
}

// NewPriceInput creates a PriceInput from its textual form.
func NewPriceInput(raw string) PriceInput {
	return PriceInput{Raw: strings.TrimSpace(raw)}
}

// UnmarshalJSON accepts a JSON number, a JSON string, or null.
func (p *PriceInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		p.Raw = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid price: %w", err)
		}
		p.Raw = strings.TrimSpace(s)
	default:
		// Numbers, booleans and composites are kept verbatim and judged by
		// the validation rules.
		p.Raw = string(data)
	}
	return nil
}

// MarshalJSON writes the price back as it was submitted.
func (p PriceInput) MarshalJSON() ([]byte, error) {
	if p.Raw == "" {
		return []byte("null"), nil
	}
	if _, err := decimal.NewFromString(p.Raw); err == nil {
		return []byte(p.Raw), nil
	}
	return json.Marshal(p.Raw)
}

// IsSet reports whether a price was supplied at all.
func (p PriceInput) IsSet() bool {
	return p.Raw != ""
}

// Decimal parses the price. Scientific notation such as "1e3" is accepted.
func (p PriceInput) Decimal() (decimal.Decimal, error) {
	return ParsePrice(p.Raw)
}

// Magnitude limits of a float64, in powers of ten.
const (
	maxPriceMagnitude = 309
	minPriceMagnitude = -324
)

// ErrPriceOutOfRange is returned for prices too large to be a finite number.
var ErrPriceOutOfRange = errors.New("price out of range")

// ParsePrice parses a submitted price with float64 range semantics: values
// beyond the float64 range fail with ErrPriceOutOfRange and values below the
// smallest float64 become zero. Exponents are bounded before any arithmetic
// that would scale with them.
func ParsePrice(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}

	switch m := magnitude(d); {
	case m > maxPriceMagnitude:
		return decimal.Zero, ErrPriceOutOfRange
	case m < minPriceMagnitude:
		return decimal.Zero, nil
	}
	return d, nil
}

// magnitude approximates the power of ten just above |d| without expanding
// the exponent.
func magnitude(d decimal.Decimal) int64 {
	digits := int64(float64(d.Coefficient().BitLen())*math.Log10(2)) + 1
	return int64(d.Exponent()) + digits
}

// ToProduct converts a validated input into an unsaved Product.
func (in ProductInput) ToProduct() (*Product, error) {
	price, err := in.Price.Decimal()
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", in.Price.Raw, err)
	}
	return &Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
	}, nil
}
