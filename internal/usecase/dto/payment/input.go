package paymentdto

import "github.com/metalaloud/royalty-service/internal/domain"

type ItemInput struct {
	ProductID string
	Quantity  int
}

type ProcessPaymentInput struct {
	UserID          string
	Amount          float64
	Card            domain.CardDetails
	Items           []ItemInput
	ShippingAddress domain.ShippingAddress
}

type ListOrdersInput struct {
	UserID string
	Page   int64
	Limit  int64
}
