package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/metalaloud/royalty-service/internal/domain"
	publisher "github.com/metalaloud/royalty-service/internal/infrastructure/kafka"
	copyrightdto "github.com/metalaloud/royalty-service/internal/usecase/dto/copyright"
)

const copyrightIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RegisterCopyright validates ownership and quota, derives the hash
// artifacts and persists a pending registration. Ownership and quota
// failures are terminal and never retried.
func (uc *DefaultCopyrightUsecase) RegisterCopyright(ctx context.Context, input *copyrightdto.RegisterCopyrightInput) (*domain.CopyrightRegistration, error) {
	song, err := uc.songRepo.GetSongByID(ctx, input.SongID)
	if err != nil {
		return nil, fmt.Errorf("failed to load song %s: %w", input.SongID, err)
	}
	if song.ArtistID != input.ArtistID {
		return nil, fmt.Errorf("%w: song %s", domain.ErrNotOwner, input.SongID)
	}

	var subscription *domain.Subscription
	if input.UseSubscription {
		subscription, err = uc.subscriptionRepo.GetActiveByArtistID(ctx, input.ArtistID)
		if err != nil {
			return nil, fmt.Errorf("failed to load subscription for artist %s: %w", input.ArtistID, err)
		}
		if subscription != nil {
			if err := uc.checkQuota(ctx, input.ArtistID, subscription); err != nil {
				return nil, err
			}
		}
	}

	now := time.Now()
	copyrightID, err := generateCopyrightID(now)
	if err != nil {
		return nil, fmt.Errorf("failed to register copyright: %w", err)
	}

	fingerprint, err := uc.fingerprints.Fingerprint(ctx, song, now.UnixMilli())
	if err != nil {
		slog.Error("fingerprint computation failed", "song_id", song.ID, "error", err.Error())
		return nil, fmt.Errorf("failed to register copyright: %w", err)
	}
	contentHash, err := songContentHash(song, now.UnixMilli())
	if err != nil {
		slog.Error("content hash computation failed", "song_id", song.ID, "error", err.Error())
		return nil, fmt.Errorf("failed to register copyright: %w", err)
	}
	blockchainHash, err := uc.anchors.Anchor(ctx, copyrightID, contentHash, now.UnixMilli())
	if err != nil {
		slog.Error("anchor computation failed", "copyright_id", copyrightID, "error", err.Error())
		return nil, fmt.Errorf("failed to register copyright: %w", err)
	}

	registration := &domain.CopyrightRegistration{
		ID:               uuid.New().String(),
		SongID:           song.ID,
		ArtistID:         input.ArtistID,
		CopyrightID:      copyrightID,
		Status:           domain.CopyrightPending,
		Type:             input.Type,
		ProtectionLevel:  protectionLevel(subscription, input.Type),
		Fingerprint:      fingerprint,
		ContentHash:      contentHash,
		BlockchainHash:   blockchainHash,
		RegistrationDate: now,
	}

	if err := uc.copyrightRepo.CreateRegistration(ctx, registration); err != nil {
		return nil, fmt.Errorf("failed to register copyright: %w", err)
	}

	uc.metrics.RecordRegistrationCreated(string(registration.Type), string(registration.ProtectionLevel))

	if uc.kafkaPublisher != nil {
		go func(event publisher.CopyrightEvent) {
			if err := uc.kafkaPublisher.PublishCopyright(event); err != nil {
				slog.Error("failed to publish CopyrightEvent:registered", "error", err.Error())
			}
		}(publisher.CopyrightEvent{
			RegistrationID:  registration.ID,
			CopyrightID:     registration.CopyrightID,
			SongID:          registration.SongID,
			ArtistID:        registration.ArtistID,
			Status:          string(registration.Status),
			ProtectionLevel: string(registration.ProtectionLevel),
		})
	}

	slog.Info("copyright registered",
		"copyright_id", registration.CopyrightID,
		"song_id", registration.SongID,
		"artist_id", registration.ArtistID,
		"protection_level", registration.ProtectionLevel,
	)
	return registration, nil
}

func (uc *DefaultCopyrightUsecase) checkQuota(ctx context.Context, artistID string, subscription *domain.Subscription) error {
	quota := subscription.RegistrationQuota()
	if quota == 0 {
		return nil
	}
	windowStart := subscription.QuotaWindowStart(time.Now())
	count, err := uc.copyrightRepo.CountRegistrationsSince(ctx, artistID, windowStart)
	if err != nil {
		return fmt.Errorf("failed to count registrations for artist %s: %w", artistID, err)
	}
	if count >= quota {
		return fmt.Errorf("%w: %d of %d used for %s/%s plan",
			domain.ErrQuotaExceeded, count, quota, subscription.Plan, subscription.Period)
	}
	return nil
}

// protectionLevel: no subscription gives basic, a subscription upgrades
// manual registrations to standard and automatic ones to premium.
func protectionLevel(subscription *domain.Subscription, regType domain.RegistrationType) domain.ProtectionLevel {
	if subscription == nil {
		return domain.ProtectionBasic
	}
	if regType == domain.RegistrationAutomatic {
		return domain.ProtectionPremium
	}
	return domain.ProtectionStandard
}

// generateCopyrightID builds CR-<base36 timestamp>-<6 random base36>,
// uppercased. Uniqueness is probabilistic, which is acceptable for
// non-adversarial internal identifiers.
func generateCopyrightID(now time.Time) (string, error) {
	suffixGen, err := nanoid.CustomASCII(copyrightIDAlphabet, 6)
	if err != nil {
		return "", err
	}
	id := fmt.Sprintf("CR-%s-%s", strconv.FormatInt(now.UnixMilli(), 36), suffixGen())
	return strings.ToUpper(id), nil
}

func songContentHash(song *domain.Song, at int64) (string, error) {
	payload, err := json.Marshal(struct {
		SongID    string `json:"song_id"`
		ArtistID  string `json:"artist_id"`
		Title     string `json:"title"`
		Genre     string `json:"genre"`
		Timestamp int64  `json:"timestamp"`
	}{song.ID, song.ArtistID, song.Title, song.Genre, at})
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256(payload)
	return hex.EncodeToString(digest[:]), nil
}
