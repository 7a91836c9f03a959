package usecase

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/metalaloud/royalty-service/internal/domain"
	copyrightdto "github.com/metalaloud/royalty-service/internal/usecase/dto/copyright"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSongRepo struct {
	songs map[string]*domain.Song
}

func (f *fakeSongRepo) GetSongByID(ctx context.Context, id string) (*domain.Song, error) {
	song, ok := f.songs[id]
	if !ok {
		return nil, fmt.Errorf("song %s not found", id)
	}
	return song, nil
}

func (f *fakeSongRepo) CreateSong(ctx context.Context, song *domain.Song) error {
	f.songs[song.ID] = song
	return nil
}

type fakeSubscriptionRepo struct {
	subscriptions map[string]*domain.Subscription
}

func (f *fakeSubscriptionRepo) GetActiveByArtistID(ctx context.Context, artistID string) (*domain.Subscription, error) {
	return f.subscriptions[artistID], nil
}

type fakeCopyrightRepo struct {
	registrations []*domain.CopyrightRegistration
	countSince    int64
}

func (f *fakeCopyrightRepo) CreateRegistration(ctx context.Context, reg *domain.CopyrightRegistration) error {
	f.registrations = append(f.registrations, reg)
	return nil
}

func (f *fakeCopyrightRepo) GetRegistrationByID(ctx context.Context, id string) (*domain.CopyrightRegistration, error) {
	for _, reg := range f.registrations {
		if reg.ID == id || reg.CopyrightID == id {
			return reg, nil
		}
	}
	return nil, fmt.Errorf("registration %s not found", id)
}

func (f *fakeCopyrightRepo) GetRegistrationsByArtistID(ctx context.Context, artistID string) ([]*domain.CopyrightRegistration, error) {
	var out []*domain.CopyrightRegistration
	for _, reg := range f.registrations {
		if reg.ArtistID == artistID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (f *fakeCopyrightRepo) GetRegistrationsBySongID(ctx context.Context, songID string) ([]*domain.CopyrightRegistration, error) {
	var out []*domain.CopyrightRegistration
	for _, reg := range f.registrations {
		if reg.SongID == songID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (f *fakeCopyrightRepo) CountRegistrationsSince(ctx context.Context, artistID string, since time.Time) (int64, error) {
	return f.countSince, nil
}

func (f *fakeCopyrightRepo) UpdateRegistrationStatus(ctx context.Context, id string, status domain.CopyrightStatus, reviewedAt time.Time) error {
	reg, err := f.GetRegistrationByID(ctx, id)
	if err != nil {
		return err
	}
	reg.Status = status
	reg.ReviewedAt = &reviewedAt
	return nil
}

func (f *fakeCopyrightRepo) FindPendingAutomaticBefore(ctx context.Context, cutoff time.Time) ([]*domain.CopyrightRegistration, error) {
	var out []*domain.CopyrightRegistration
	for _, reg := range f.registrations {
		if reg.Type == domain.RegistrationAutomatic && reg.Status == domain.CopyrightPending && reg.RegistrationDate.Before(cutoff) {
			out = append(out, reg)
		}
	}
	return out, nil
}

type fakeFingerprints struct{}

func (fakeFingerprints) Fingerprint(ctx context.Context, song *domain.Song, at int64) (string, error) {
	return "fp-" + song.ID, nil
}

type fakeAnchors struct{}

func (fakeAnchors) Anchor(ctx context.Context, copyrightID, contentHash string, at int64) (string, error) {
	return "anchor-" + copyrightID, nil
}

type copyrightFixture struct {
	uc            *DefaultCopyrightUsecase
	copyrights    *fakeCopyrightRepo
	subscriptions *fakeSubscriptionRepo
}

func newCopyrightFixture() *copyrightFixture {
	copyrights := &fakeCopyrightRepo{}
	subscriptions := &fakeSubscriptionRepo{subscriptions: map[string]*domain.Subscription{}}
	songs := &fakeSongRepo{songs: map[string]*domain.Song{
		"song-1": {ID: "song-1", ArtistID: "artist-1", Title: "Painkiller", Genre: "metal", AudioURL: "https://cdn/song-1.mp3"},
	}}
	uc := NewDefaultCopyrightUsecase(copyrights, songs, subscriptions, fakeFingerprints{}, fakeAnchors{}, nil, nil)
	return &copyrightFixture{uc: uc, copyrights: copyrights, subscriptions: subscriptions}
}

var copyrightIDPattern = regexp.MustCompile(`^CR-[0-9A-Z]+-[0-9A-Z]{6}$`)

func TestRegisterCopyright(t *testing.T) {
	f := newCopyrightFixture()

	reg, err := f.uc.RegisterCopyright(context.Background(), &copyrightdto.RegisterCopyrightInput{
		SongID:   "song-1",
		ArtistID: "artist-1",
		Type:     domain.RegistrationManual,
	})
	require.NoError(t, err)

	assert.Regexp(t, copyrightIDPattern, reg.CopyrightID)
	assert.Equal(t, domain.CopyrightPending, reg.Status)
	assert.Equal(t, domain.ProtectionBasic, reg.ProtectionLevel)
	assert.Equal(t, "fp-song-1", reg.Fingerprint)
	assert.NotEmpty(t, reg.ContentHash)
	assert.Equal(t, "anchor-"+reg.CopyrightID, reg.BlockchainHash)
	assert.Len(t, f.copyrights.registrations, 1)
}

func TestRegisterCopyrightNotOwner(t *testing.T) {
	f := newCopyrightFixture()

	_, err := f.uc.RegisterCopyright(context.Background(), &copyrightdto.RegisterCopyrightInput{
		SongID:   "song-1",
		ArtistID: "artist-2",
		Type:     domain.RegistrationManual,
	})
	assert.ErrorIs(t, err, domain.ErrNotOwner)
	assert.Empty(t, f.copyrights.registrations)
}

func TestRegisterCopyrightQuota(t *testing.T) {
	f := newCopyrightFixture()
	f.subscriptions.subscriptions["artist-1"] = &domain.Subscription{
		ArtistID: "artist-1",
		Plan:     domain.PlanBasic,
		Period:   domain.PeriodMonthly,
		Active:   true,
	}
	f.copyrights.countSince = 5

	_, err := f.uc.RegisterCopyright(context.Background(), &copyrightdto.RegisterCopyrightInput{
		SongID:          "song-1",
		ArtistID:        "artist-1",
		Type:            domain.RegistrationManual,
		UseSubscription: true,
	})
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
}

func TestRegisterCopyrightUnlimitedQuota(t *testing.T) {
	f := newCopyrightFixture()
	f.subscriptions.subscriptions["artist-1"] = &domain.Subscription{
		ArtistID: "artist-1",
		Plan:     domain.PlanPro,
		Period:   domain.PeriodYearly,
		Active:   true,
	}
	f.copyrights.countSince = 100000

	_, err := f.uc.RegisterCopyright(context.Background(), &copyrightdto.RegisterCopyrightInput{
		SongID:          "song-1",
		ArtistID:        "artist-1",
		Type:            domain.RegistrationManual,
		UseSubscription: true,
	})
	assert.NoError(t, err)
}

func TestProtectionLevels(t *testing.T) {
	sub := &domain.Subscription{Plan: domain.PlanPro, Period: domain.PeriodMonthly}

	assert.Equal(t, domain.ProtectionBasic, protectionLevel(nil, domain.RegistrationManual))
	assert.Equal(t, domain.ProtectionBasic, protectionLevel(nil, domain.RegistrationAutomatic))
	assert.Equal(t, domain.ProtectionStandard, protectionLevel(sub, domain.RegistrationManual))
	assert.Equal(t, domain.ProtectionPremium, protectionLevel(sub, domain.RegistrationAutomatic))
}

func TestRegisterCopyrightWithoutSubscriptionFlag(t *testing.T) {
	f := newCopyrightFixture()
	f.copyrights.countSince = 100000

	// UseSubscription false skips quota entirely and yields basic protection
	reg, err := f.uc.RegisterCopyright(context.Background(), &copyrightdto.RegisterCopyrightInput{
		SongID:   "song-1",
		ArtistID: "artist-1",
		Type:     domain.RegistrationAutomatic,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ProtectionBasic, reg.ProtectionLevel)
}

func TestReviewRegistration(t *testing.T) {
	f := newCopyrightFixture()
	reg, err := f.uc.RegisterCopyright(context.Background(), &copyrightdto.RegisterCopyrightInput{
		SongID:   "song-1",
		ArtistID: "artist-1",
		Type:     domain.RegistrationManual,
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.ReviewRegistration(context.Background(), &copyrightdto.ReviewRegistrationInput{
		RegistrationID: reg.ID,
		Approve:        true,
	}))
	assert.Equal(t, domain.CopyrightActive, reg.Status)
	assert.NotNil(t, reg.ReviewedAt)

	// reviewed registrations are immutable
	err = f.uc.ReviewRegistration(context.Background(), &copyrightdto.ReviewRegistrationInput{
		RegistrationID: reg.ID,
		Approve:        false,
	})
	assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
}

func TestReviewRegistrationReject(t *testing.T) {
	f := newCopyrightFixture()
	reg, err := f.uc.RegisterCopyright(context.Background(), &copyrightdto.RegisterCopyrightInput{
		SongID:   "song-1",
		ArtistID: "artist-1",
		Type:     domain.RegistrationManual,
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.ReviewRegistration(context.Background(), &copyrightdto.ReviewRegistrationInput{
		RegistrationID: reg.ID,
		Approve:        false,
	}))
	assert.Equal(t, domain.CopyrightRejected, reg.Status)
}

func TestActivateExpiredAutomaticRegistrations(t *testing.T) {
	f := newCopyrightFixture()
	old := time.Now().Add(-time.Hour)
	f.copyrights.registrations = []*domain.CopyrightRegistration{
		{ID: "r1", Type: domain.RegistrationAutomatic, Status: domain.CopyrightPending, RegistrationDate: old},
		{ID: "r2", Type: domain.RegistrationManual, Status: domain.CopyrightPending, RegistrationDate: old},
		{ID: "r3", Type: domain.RegistrationAutomatic, Status: domain.CopyrightPending, RegistrationDate: time.Now()},
	}

	require.NoError(t, f.uc.ActivateExpiredAutomaticRegistrations(context.Background(), 15*time.Minute))
	assert.Equal(t, domain.CopyrightActive, f.copyrights.registrations[0].Status)
	assert.Equal(t, domain.CopyrightPending, f.copyrights.registrations[1].Status)
	assert.Equal(t, domain.CopyrightPending, f.copyrights.registrations[2].Status)
}
