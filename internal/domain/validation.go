package domain

import "fmt"

// ValidationCategory tells the delivery layer which part of a payment
// request was rejected.
type ValidationCategory string

const (
	CategoryAmount   ValidationCategory = "amount"
	CategoryCard     ValidationCategory = "card"
	CategoryShipping ValidationCategory = "shipping"
	CategoryStock    ValidationCategory = "stock"
	CategoryGateway  ValidationCategory = "gateway"
	CategoryGeneric  ValidationCategory = "generic"
)

type ValidationError struct {
	Category ValidationCategory
	Message  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func NewValidationError(category ValidationCategory, format string, args ...any) *ValidationError {
	return &ValidationError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}
