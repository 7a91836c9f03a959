package models

import (
	"time"

	"github.com/metalaloud/royalty-service/internal/domain"
)

type CopyrightRegistrationModel struct {
	ID               string                  `gorm:"primaryKey;type:uuid"`
	SongID           string                  `gorm:"type:uuid;index"`
	ArtistID         string                  `gorm:"type:uuid;index:idx_artist_registered"`
	CopyrightID      string                  `gorm:"uniqueIndex"`
	Status           domain.CopyrightStatus  `gorm:"index:idx_status_type"`
	Type             domain.RegistrationType `gorm:"index:idx_status_type"`
	ProtectionLevel  domain.ProtectionLevel
	Fingerprint      string
	ContentHash      string
	BlockchainHash   string
	RegistrationDate time.Time               `gorm:"index:idx_artist_registered"`
	ReviewedAt       *time.Time
}
