package usecase

import (
	"context"
	"time"

	"github.com/metalaloud/royalty-service/internal/domain"
	publisher "github.com/metalaloud/royalty-service/internal/infrastructure/kafka"
	"github.com/metalaloud/royalty-service/internal/infrastructure/logger"
	"github.com/metalaloud/royalty-service/internal/infrastructure/metrics"
	royalty "github.com/metalaloud/royalty-service/internal/usecase"
	paymentdto "github.com/metalaloud/royalty-service/internal/usecase/dto/payment"
)

type PaymentUsecase interface {
	ProcessPayment(ctx context.Context, input *paymentdto.ProcessPaymentInput) (*paymentdto.ProcessPaymentOutput, error)
	RefundOrder(ctx context.Context, orderID string) error
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, input *paymentdto.ListOrdersInput) (*paymentdto.ListOrdersOutput, error)
	CancelExpiredOrders(ctx context.Context, ttl time.Duration) error
}

type DefaultPaymentUsecase struct {
	orderRepo         domain.OrderRepository
	productRepo       domain.ProductRepository
	walletRepo        domain.WalletRepository
	walletUsecase     royalty.WalletUsecase
	commissionUsecase royalty.CommissionUsecase
	gateway           domain.PaymentGateway
	kafkaPublisher    *publisher.KafkaPublisher
	eventLogger       logger.PaymentEventLogger
	metrics           *metrics.RoyaltyMetrics
}

func NewDefaultPaymentUsecase(
	orderRepo domain.OrderRepository,
	productRepo domain.ProductRepository,
	walletRepo domain.WalletRepository,
	walletUsecase royalty.WalletUsecase,
	commissionUsecase royalty.CommissionUsecase,
	gateway domain.PaymentGateway,
	kafkaPublisher *publisher.KafkaPublisher,
	eventLogger logger.PaymentEventLogger,
	royaltyMetrics *metrics.RoyaltyMetrics,
) *DefaultPaymentUsecase {
	return &DefaultPaymentUsecase{
		orderRepo:         orderRepo,
		productRepo:       productRepo,
		walletRepo:        walletRepo,
		walletUsecase:     walletUsecase,
		commissionUsecase: commissionUsecase,
		gateway:           gateway,
		kafkaPublisher:    kafkaPublisher,
		eventLogger:       eventLogger,
		metrics:           royaltyMetrics,
	}
}
