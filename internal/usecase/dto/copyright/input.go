package copyrightdto

import "github.com/metalaloud/royalty-service/internal/domain"

type RegisterCopyrightInput struct {
	SongID          string
	ArtistID        string
	Type            domain.RegistrationType
	UseSubscription bool
}

type ReviewRegistrationInput struct {
	RegistrationID string
	Approve        bool
}

type ListRegistrationsInput struct {
	ArtistID string
	SongID   string
}
