package models

import (
	"time"

	"github.com/metalaloud/royalty-service/internal/domain"
)

type SubscriptionModel struct {
	ID        string                    `gorm:"primaryKey;type:uuid"`
	ArtistID  string                    `gorm:"type:uuid;index"`
	Plan      domain.SubscriptionPlan
	Period    domain.SubscriptionPeriod
	Active    bool                      `gorm:"index"`
	ExpiresAt time.Time
}
