package usecase

import (
	"context"
	"fmt"

	"github.com/metalaloud/royalty-service/internal/domain"
	copyrightdto "github.com/metalaloud/royalty-service/internal/usecase/dto/copyright"
)

func (uc *DefaultCopyrightUsecase) GetRegistrationByID(ctx context.Context, id string) (*domain.CopyrightRegistration, error) {
	return uc.copyrightRepo.GetRegistrationByID(ctx, id)
}

func (uc *DefaultCopyrightUsecase) ListRegistrations(ctx context.Context, input *copyrightdto.ListRegistrationsInput) (*copyrightdto.ListRegistrationsOutput, error) {
	var (
		registrations []*domain.CopyrightRegistration
		err           error
	)
	switch {
	case input.SongID != "":
		registrations, err = uc.copyrightRepo.GetRegistrationsBySongID(ctx, input.SongID)
	case input.ArtistID != "":
		registrations, err = uc.copyrightRepo.GetRegistrationsByArtistID(ctx, input.ArtistID)
	default:
		return nil, fmt.Errorf("either song_id or artist_id is required")
	}
	if err != nil {
		return nil, err
	}
	return &copyrightdto.ListRegistrationsOutput{Registrations: registrations}, nil
}
