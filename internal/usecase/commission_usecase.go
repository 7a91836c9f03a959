package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/metalaloud/royalty-service/internal/domain"
)

// tierContiguityStep is the largest allowed distance between one tier's
// upper bound and the next tier's lower bound (one cent).
const tierContiguityStep = 0.01

const amountEpsilon = 1e-9

// RoundCurrency applies standard 2-decimal currency rounding.
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}

type CommissionUsecase interface {
	ResolveRate(ctx context.Context, amount float64) (float64, error)
	NetEarnings(ctx context.Context, amount float64) (net float64, rate float64, err error)
	ListTiers(ctx context.Context) ([]*domain.CommissionTier, error)
	ReplaceTiers(ctx context.Context, tiers []*domain.CommissionTier) error
}

type DefaultCommissionUsecase struct {
	tierRepo domain.CommissionTierRepository
}

func NewDefaultCommissionUsecase(tierRepo domain.CommissionTierRepository) *DefaultCommissionUsecase {
	return &DefaultCommissionUsecase{tierRepo: tierRepo}
}

// ResolveRate returns the fee percent of the single active tier matching
// the cumulative amount, or DefaultCommissionRate when none matches.
func (uc *DefaultCommissionUsecase) ResolveRate(ctx context.Context, amount float64) (float64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("amount must be non-negative, got %f", amount)
	}
	tiers, err := uc.tierRepo.ListTiers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list commission tiers: %w", err)
	}
	for _, tier := range tiers {
		if tier.Active && tier.Matches(amount) {
			return tier.RatePercent, nil
		}
	}
	return domain.DefaultCommissionRate, nil
}

func (uc *DefaultCommissionUsecase) NetEarnings(ctx context.Context, amount float64) (float64, float64, error) {
	rate, err := uc.ResolveRate(ctx, amount)
	if err != nil {
		return 0, 0, err
	}
	return RoundCurrency(amount * (1 - rate/100)), rate, nil
}

func (uc *DefaultCommissionUsecase) ListTiers(ctx context.Context) ([]*domain.CommissionTier, error) {
	return uc.tierRepo.ListTiers(ctx)
}

// ReplaceTiers swaps the whole tier set after validating it. Partial
// edits are not supported so the contiguity invariant can be checked
// against the full set at save time.
func (uc *DefaultCommissionUsecase) ReplaceTiers(ctx context.Context, tiers []*domain.CommissionTier) error {
	if err := ValidateTiers(tiers); err != nil {
		return err
	}
	return uc.tierRepo.ReplaceTiers(ctx, tiers)
}

// ValidateTiers enforces the admin-maintained invariant: sorted tiers
// with no overlap, no gap wider than a cent, and an unbounded last tier.
func ValidateTiers(tiers []*domain.CommissionTier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("tier set must not be empty")
	}

	sorted := make([]*domain.CommissionTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinAmount < sorted[j].MinAmount
	})

	if sorted[0].MinAmount > amountEpsilon {
		return fmt.Errorf("%w: first tier must start at 0", domain.ErrTierGap)
	}

	for i, tier := range sorted {
		last := i == len(sorted)-1
		if last {
			if tier.MaxAmount != nil {
				return domain.ErrTierUnbounded
			}
			continue
		}
		if tier.MaxAmount == nil {
			return fmt.Errorf("%w: only the last tier may be unbounded", domain.ErrTierOverlap)
		}
		next := sorted[i+1]
		if next.MinAmount <= *tier.MaxAmount+amountEpsilon {
			return fmt.Errorf("%w: %f overlaps %f", domain.ErrTierOverlap, *tier.MaxAmount, next.MinAmount)
		}
		if next.MinAmount-*tier.MaxAmount > tierContiguityStep+amountEpsilon {
			return fmt.Errorf("%w: between %f and %f", domain.ErrTierGap, *tier.MaxAmount, next.MinAmount)
		}
	}

	return nil
}
