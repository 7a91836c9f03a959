package paymentdto

import "github.com/metalaloud/royalty-service/internal/domain"

type ProcessPaymentOutput struct {
	OrderID       string
	TransactionID string
	TotalAmount   float64
}

type ListOrdersOutput struct {
	Orders []*domain.Order
	Total  int64
}
