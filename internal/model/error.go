package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Message       string      `json:"message"`
	Error         string      `json:"error,omitempty"`
	Errors        []Violation `json:"errors,omitempty"`
	CorrelationID string      `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeMalformedID      = "MALFORMED_IDENTIFIER"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeRouteNotFound    = "ROUTE_NOT_FOUND"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "product not found")
	ErrMalformedID     = NewDomainError(ErrCodeMalformedID, "product ID must be a numeric identifier")
)

// Persistence failures. Repositories wrap the driver error with one of these.
var (
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrConstraintViolation = errors.New("constraint violation")
)

// Rule names a single validation rule.
type Rule string

const (
	RuleRequired        Rule = "RequiredField"
	RuleTooLong         Rule = "TooLong"
	RuleNotANumber      Rule = "NotANumber"
	RuleNotPositive     Rule = "NotPositive"
	RuleTooManyDecimals Rule = "TooManyDecimals"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

// ValidationError carries every violation found for a candidate product.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
