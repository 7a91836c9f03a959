package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/metalaloud/royalty-service/internal/config"
	"github.com/metalaloud/royalty-service/internal/usecase"
	copyrightuc "github.com/metalaloud/royalty-service/internal/usecase/copyright"
	paymentuc "github.com/metalaloud/royalty-service/internal/usecase/payment"
)

type BackgroundTasks struct {
	Config           *config.RoyaltyConfig
	CopyrightUsecase copyrightuc.CopyrightUsecase
	WalletUsecase    usecase.WalletUsecase
	PaymentUsecase   paymentuc.PaymentUsecase
}

func NewBackgroundTasks(
	cfg *config.RoyaltyConfig,
	copyrightUC copyrightuc.CopyrightUsecase,
	walletUC usecase.WalletUsecase,
	paymentUC paymentuc.PaymentUsecase,
) *BackgroundTasks {
	return &BackgroundTasks{
		Config:           cfg,
		CopyrightUsecase: copyrightUC,
		WalletUsecase:    walletUC,
		PaymentUsecase:   paymentUC,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startRegistrationAutoActivate(ctx)
	go bt.startWithdrawalExpiry(ctx)
	go bt.startOrderAutoCancel(ctx)
}

// startRegistrationAutoActivate promotes automatic registrations that
// sat in pending past the review window without a moderator decision.
func (bt *BackgroundTasks) startRegistrationAutoActivate(ctx context.Context) {
	ticker := time.NewTicker(bt.Config.Moderation.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.CopyrightUsecase.ActivateExpiredAutomaticRegistrations(ctx, bt.Config.Moderation.ReviewWindow); err != nil {
				slog.Error("registration auto-activate sweep failed", "error", err.Error())
			}
		}
	}
}

func (bt *BackgroundTasks) startWithdrawalExpiry(ctx context.Context) {
	ticker := time.NewTicker(bt.Config.Withdrawal.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.WalletUsecase.ExpirePendingWithdrawals(ctx, bt.Config.Withdrawal.PendingTTL); err != nil {
				slog.Error("withdrawal expiry sweep failed", "error", err.Error())
			}
		}
	}
}

func (bt *BackgroundTasks) startOrderAutoCancel(ctx context.Context) {
	ticker := time.NewTicker(bt.Config.Orders.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.PaymentUsecase.CancelExpiredOrders(ctx, bt.Config.Orders.PendingTTL); err != nil {
				slog.Error("order auto-cancel sweep failed", "error", err.Error())
			}
		}
	}
}
