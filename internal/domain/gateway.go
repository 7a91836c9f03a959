package domain

import "context"

type GatewayCharge struct {
	Amount   float64
	Currency string
	Card     CardDetails
}

type GatewayResult struct {
	TransactionID string
}

type PaymentGateway interface {
	Charge(ctx context.Context, charge GatewayCharge) (*GatewayResult, error)
}
