package domain

import (
	"context"
	"time"
)

type SubscriptionPlan string

const (
	PlanBasic SubscriptionPlan = "basic"
	PlanPro   SubscriptionPlan = "pro"
)

type SubscriptionPeriod string

const (
	PeriodMonthly SubscriptionPeriod = "monthly"
	PeriodYearly  SubscriptionPeriod = "yearly"
)

type Subscription struct {
	ID        string
	ArtistID  string
	Plan      SubscriptionPlan
	Period    SubscriptionPeriod
	Active    bool
	ExpiresAt time.Time
}

// RegistrationQuota is the copyright registration cap for a plan within
// its billing period. 0 means unlimited.
var registrationQuotas = map[SubscriptionPlan]map[SubscriptionPeriod]int64{
	PlanBasic: {
		PeriodMonthly: 5,
		PeriodYearly:  60,
	},
	PlanPro: {
		PeriodMonthly: 20,
		PeriodYearly:  0,
	},
}

func (s *Subscription) RegistrationQuota() int64 {
	return registrationQuotas[s.Plan][s.Period]
}

// QuotaWindowStart returns the beginning of the period the quota counts
// over: start of the current month for monthly plans, start of the
// current year for yearly ones.
func (s *Subscription) QuotaWindowStart(now time.Time) time.Time {
	if s.Period == PeriodYearly {
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

type SubscriptionRepository interface {
	GetActiveByArtistID(ctx context.Context, artistID string) (*Subscription, error)
}
