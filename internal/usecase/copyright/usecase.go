package usecase

import (
	"context"
	"time"

	"github.com/metalaloud/royalty-service/internal/domain"
	publisher "github.com/metalaloud/royalty-service/internal/infrastructure/kafka"
	"github.com/metalaloud/royalty-service/internal/infrastructure/metrics"
	copyrightdto "github.com/metalaloud/royalty-service/internal/usecase/dto/copyright"
)

type CopyrightUsecase interface {
	RegisterCopyright(ctx context.Context, input *copyrightdto.RegisterCopyrightInput) (*domain.CopyrightRegistration, error)
	ReviewRegistration(ctx context.Context, input *copyrightdto.ReviewRegistrationInput) error
	GetRegistrationByID(ctx context.Context, id string) (*domain.CopyrightRegistration, error)
	ListRegistrations(ctx context.Context, input *copyrightdto.ListRegistrationsInput) (*copyrightdto.ListRegistrationsOutput, error)
	ActivateExpiredAutomaticRegistrations(ctx context.Context, reviewWindow time.Duration) error
}

type DefaultCopyrightUsecase struct {
	copyrightRepo    domain.CopyrightRepository
	songRepo         domain.SongRepository
	subscriptionRepo domain.SubscriptionRepository
	fingerprints     domain.FingerprintProvider
	anchors          domain.LedgerAnchorProvider
	kafkaPublisher   *publisher.KafkaPublisher
	metrics          *metrics.RoyaltyMetrics
}

func NewDefaultCopyrightUsecase(
	copyrightRepo domain.CopyrightRepository,
	songRepo domain.SongRepository,
	subscriptionRepo domain.SubscriptionRepository,
	fingerprints domain.FingerprintProvider,
	anchors domain.LedgerAnchorProvider,
	kafkaPublisher *publisher.KafkaPublisher,
	royaltyMetrics *metrics.RoyaltyMetrics,
) *DefaultCopyrightUsecase {
	return &DefaultCopyrightUsecase{
		copyrightRepo:    copyrightRepo,
		songRepo:         songRepo,
		subscriptionRepo: subscriptionRepo,
		fingerprints:     fingerprints,
		anchors:          anchors,
		kafkaPublisher:   kafkaPublisher,
		metrics:          royaltyMetrics,
	}
}
