package domain

import (
	"context"
	"time"
)

type CopyrightStatus string

const (
	CopyrightPending  CopyrightStatus = "pending"
	CopyrightActive   CopyrightStatus = "active"
	CopyrightRejected CopyrightStatus = "rejected"
)

type RegistrationType string

const (
	RegistrationAutomatic RegistrationType = "automatic"
	RegistrationManual    RegistrationType = "manual"
)

type ProtectionLevel string

const (
	ProtectionBasic    ProtectionLevel = "basic"
	ProtectionStandard ProtectionLevel = "standard"
	ProtectionPremium  ProtectionLevel = "premium"
)

// CopyrightRegistration asserts a song's protection status inside the
// platform. It is not an external legal filing. Once active it is
// immutable except for status transitions done by moderation.
type CopyrightRegistration struct {
	ID               string
	SongID           string
	ArtistID         string
	CopyrightID      string
	Status           CopyrightStatus
	Type             RegistrationType
	ProtectionLevel  ProtectionLevel
	Fingerprint      string
	ContentHash      string
	BlockchainHash   string
	RegistrationDate time.Time
	ReviewedAt       *time.Time
}

type CopyrightRepository interface {
	CreateRegistration(ctx context.Context, reg *CopyrightRegistration) error
	GetRegistrationByID(ctx context.Context, id string) (*CopyrightRegistration, error)
	GetRegistrationsByArtistID(ctx context.Context, artistID string) ([]*CopyrightRegistration, error)
	GetRegistrationsBySongID(ctx context.Context, songID string) ([]*CopyrightRegistration, error)
	CountRegistrationsSince(ctx context.Context, artistID string, since time.Time) (int64, error)
	UpdateRegistrationStatus(ctx context.Context, id string, status CopyrightStatus, reviewedAt time.Time) error
	FindPendingAutomaticBefore(ctx context.Context, cutoff time.Time) ([]*CopyrightRegistration, error)
}
