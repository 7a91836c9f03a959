package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/metalaloud/royalty-service/internal/domain"
	royalty "github.com/metalaloud/royalty-service/internal/usecase"
)

// RefundOrder restores stock, flips the order to refunded and reverses
// the artists' net proceeds with refund ledger rows. Only paid orders
// are refundable.
func (uc *DefaultPaymentUsecase) RefundOrder(ctx context.Context, orderID string) error {
	order, err := uc.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status != domain.OrderPaid {
		return fmt.Errorf("%w: order %s is %s", domain.ErrOrderNotRefundable, order.ID, order.Status)
	}

	if err := uc.orderRepo.RestoreStockForOrder(ctx, order); err != nil {
		return fmt.Errorf("failed to refund order %s: %w", order.ID, err)
	}

	// Reverse net proceeds per artist with the same tier math that
	// credited them. Cumulative earnings moved since the sale, so the
	// reversal recomputes commission at the original gross.
	grossByArtist := make(map[string]float64)
	for _, item := range order.Items {
		grossByArtist[item.ArtistID] += item.PriceAtTime * float64(item.Quantity)
	}
	for artistID, gross := range grossByArtist {
		gross = royalty.RoundCurrency(gross)
		cumulative, err := uc.walletRepo.SumCompletedSales(ctx, artistID)
		if err != nil {
			cumulative = 0
		}
		rate, err := uc.commissionUsecase.ResolveRate(ctx, cumulative)
		if err != nil {
			rate = domain.DefaultCommissionRate
		}
		net := royalty.RoundCurrency(gross * (1 - rate/100))
		if _, err := uc.walletUsecase.RecordRefund(ctx, artistID, net, order.ID); err != nil {
			slog.Error("failed to post refund to wallet", "artist_id", artistID, "order_id", order.ID, "error", err.Error())
		}
	}

	uc.metrics.RecordOrderRefunded(order.TotalAmount)
	slog.Info("order refunded", "order_id", order.ID, "amount", order.TotalAmount)
	return nil
}
