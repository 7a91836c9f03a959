package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/metalaloud/royalty-service/internal/domain"
)

// MockGateway simulates the payment provider: it waits for the
// configured delay and approves every charge. Validation upstream is
// the only thing standing between a request and an approval.
type MockGateway struct {
	delay time.Duration
}

func NewMockGateway(delay time.Duration) *MockGateway {
	return &MockGateway{delay: delay}
}

func (g *MockGateway) Charge(ctx context.Context, charge domain.GatewayCharge) (*domain.GatewayResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(g.delay):
	}
	return &domain.GatewayResult{TransactionID: "txn_" + uuid.New().String()}, nil
}
