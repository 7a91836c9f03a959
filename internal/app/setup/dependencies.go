package setup

import (
	"fmt"

	"github.com/metalaloud/royalty-service/internal/config"
	"github.com/metalaloud/royalty-service/internal/domain"
	"github.com/metalaloud/royalty-service/internal/infrastructure/anchor"
	"github.com/metalaloud/royalty-service/internal/infrastructure/fingerprint"
	"github.com/metalaloud/royalty-service/internal/infrastructure/gateway"
	publisher "github.com/metalaloud/royalty-service/internal/infrastructure/kafka"
	"github.com/metalaloud/royalty-service/internal/infrastructure/logger"
	"github.com/metalaloud/royalty-service/internal/infrastructure/metrics"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config             *config.RoyaltyConfig
	DB                 *gorm.DB
	SalePublisher      *publisher.KafkaPublisher
	CopyrightPublisher *publisher.KafkaPublisher
	Gateway            domain.PaymentGateway
	Fingerprints       domain.FingerprintProvider
	Anchors            domain.LedgerAnchorProvider
	EventLogger        logger.PaymentEventLogger
	Metrics            *metrics.RoyaltyMetrics
	Repositories       *Repositories
}

type Repositories struct {
	CommissionTierRepo domain.CommissionTierRepository
	CopyrightRepo      domain.CopyrightRepository
	WalletRepo         domain.WalletRepository
	OrderRepo          domain.OrderRepository
	ProductRepo        domain.ProductRepository
	SongRepo           domain.SongRepository
	SubscriptionRepo   domain.SubscriptionRepository
}

func InitializeDependencies(cfg *config.RoyaltyConfig) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)

	salePublisher, err := initPublisher(cfg, "sale-events")
	if err != nil {
		return nil, fmt.Errorf("sale publisher: %w", err)
	}

	copyrightPublisher, err := initPublisher(cfg, "copyright-events")
	if err != nil {
		return nil, fmt.Errorf("copyright publisher: %w", err)
	}

	repos := &Repositories{
		CommissionTierRepo: repository.NewDefaultCommissionTierRepository(db),
		CopyrightRepo:      repository.NewDefaultCopyrightRepository(db),
		WalletRepo:         repository.NewDefaultWalletRepository(db),
		OrderRepo:          repository.NewDefaultOrderRepository(db),
		ProductRepo:        repository.NewDefaultProductRepository(db),
		SongRepo:           repository.NewDefaultSongRepository(db),
		SubscriptionRepo:   repository.NewDefaultSubscriptionRepository(db),
	}

	return &Dependencies{
		Config:             cfg,
		DB:                 db,
		SalePublisher:      salePublisher,
		CopyrightPublisher: copyrightPublisher,
		Gateway:            gateway.NewMockGateway(cfg.Gateway.Delay),
		Fingerprints:       fingerprint.NewSHA256Provider(),
		Anchors:            anchor.NewDigestAnchor(),
		EventLogger:        logger.NewPGPaymentEventLogger(db),
		Metrics:            metrics.NewRoyaltyMetrics(),
		Repositories:       repos,
	}, nil
}

func initPublisher(cfg *config.RoyaltyConfig, topic string) (*publisher.KafkaPublisher, error) {
	config := publisher.KafkaConfig{
		Brokers:    []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		Topic:      topic,
		Username:   cfg.KafkaService.Username,
		Password:   cfg.KafkaService.Password,
		Mechanism:  cfg.KafkaService.Mechanism,
		TLSEnabled: cfg.KafkaService.TLSEnabled,
	}
	return publisher.NewKafkaPublisher(config)
}
