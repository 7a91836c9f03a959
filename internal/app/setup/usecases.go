package setup

import (
	"github.com/metalaloud/royalty-service/internal/usecase"
	copyrightuc "github.com/metalaloud/royalty-service/internal/usecase/copyright"
	paymentuc "github.com/metalaloud/royalty-service/internal/usecase/payment"
)

type UseCases struct {
	CommissionUsecase usecase.CommissionUsecase
	WalletUsecase     usecase.WalletUsecase
	CopyrightUsecase  copyrightuc.CopyrightUsecase
	PaymentUsecase    paymentuc.PaymentUsecase
	CatalogUsecase    usecase.CatalogUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	commissionUsecase := usecase.NewDefaultCommissionUsecase(deps.Repositories.CommissionTierRepo)
	walletUsecase := usecase.NewDefaultWalletUsecase(deps.Repositories.WalletRepo, deps.Metrics)

	copyrightUsecase := copyrightuc.NewDefaultCopyrightUsecase(
		deps.Repositories.CopyrightRepo,
		deps.Repositories.SongRepo,
		deps.Repositories.SubscriptionRepo,
		deps.Fingerprints,
		deps.Anchors,
		deps.CopyrightPublisher,
		deps.Metrics,
	)

	paymentUsecase := paymentuc.NewDefaultPaymentUsecase(
		deps.Repositories.OrderRepo,
		deps.Repositories.ProductRepo,
		deps.Repositories.WalletRepo,
		walletUsecase,
		commissionUsecase,
		deps.Gateway,
		deps.SalePublisher,
		deps.EventLogger,
		deps.Metrics,
	)

	catalogUsecase := usecase.NewDefaultCatalogUsecase(
		deps.Repositories.ProductRepo,
		deps.Repositories.SongRepo,
	)

	return &UseCases{
		CommissionUsecase: commissionUsecase,
		WalletUsecase:     walletUsecase,
		CopyrightUsecase:  copyrightUsecase,
		PaymentUsecase:    paymentUsecase,
		CatalogUsecase:    catalogUsecase,
	}
}
