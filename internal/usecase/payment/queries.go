package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/metalaloud/royalty-service/internal/domain"
	paymentdto "github.com/metalaloud/royalty-service/internal/usecase/dto/payment"
)

func (uc *DefaultPaymentUsecase) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.orderRepo.GetOrderByID(ctx, orderID)
}

func (uc *DefaultPaymentUsecase) ListOrders(ctx context.Context, input *paymentdto.ListOrdersInput) (*paymentdto.ListOrdersOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	orders, total, err := uc.orderRepo.GetOrdersByUserID(ctx, input.UserID, page, limit)
	if err != nil {
		return nil, err
	}
	return &paymentdto.ListOrdersOutput{Orders: orders, Total: total}, nil
}

// CancelExpiredOrders sweeps orders stuck in pending longer than the
// TTL. Paid orders are never touched.
func (uc *DefaultPaymentUsecase) CancelExpiredOrders(ctx context.Context, ttl time.Duration) error {
	cutoff := time.Now().Add(-ttl)
	stale, err := uc.orderRepo.FindPendingOrdersBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	for _, order := range stale {
		if err := uc.orderRepo.UpdateOrderStatus(ctx, order.ID, domain.OrderCanceled); err != nil {
			slog.Error("failed to cancel expired order", "order_id", order.ID, "error", err.Error())
			continue
		}
		slog.Info("expired order canceled", "order_id", order.ID)
	}
	return nil
}
