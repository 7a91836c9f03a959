package domain

import "context"

// DefaultCommissionRate applies when no tier matches a cumulative amount.
const DefaultCommissionRate = 8.0

// CommissionTier maps a cumulative earnings bracket to a platform fee
// percentage. MaxAmount == nil means the bracket is unbounded above.
type CommissionTier struct {
	ID          string
	MinAmount   float64
	MaxAmount   *float64
	RatePercent float64
	Active      bool
}

// Matches reports whether amount falls inside the tier's bracket.
func (t *CommissionTier) Matches(amount float64) bool {
	if amount < t.MinAmount {
		return false
	}
	return t.MaxAmount == nil || amount <= *t.MaxAmount
}

type CommissionTierRepository interface {
	ListTiers(ctx context.Context) ([]*CommissionTier, error)
	ReplaceTiers(ctx context.Context, tiers []*CommissionTier) error
}
