package usecase

import (
	"time"

	"riget-zoo/internal/data/entity"
)

// LoyaltyResult classifies a returning customer into a discount tier.
type LoyaltyResult struct {
	Tier        entity.LoyaltyTier
	DiscountPct float64
	Perks       string
}

// Loyalty tier lookback boundaries in whole days, inclusive.
const (
	loyalty6mDays  = 180
	loyalty12mDays = 365
	loyalty24mDays = 730
)

// EvaluateLoyalty maps the creation time of the customer's most recent
// active booking to a tier. A nil lastBooking means no discount. Days are
// counted as whole days elapsed, floored.
func EvaluateLoyalty(cfg *PricingConfig, lastBooking *time.Time, asOf time.Time) LoyaltyResult {
	if lastBooking == nil {
		return LoyaltyResult{}
	}

	days := int(asOf.Sub(*lastBooking).Hours() / 24)

	var result LoyaltyResult
	switch {
	case days <= loyalty6mDays:
		result = LoyaltyResult{Tier: entity.LoyaltyTier6m, DiscountPct: cfg.Loyalty6mPct}
	case days <= loyalty12mDays:
		result = LoyaltyResult{Tier: entity.LoyaltyTier12m, DiscountPct: cfg.Loyalty12mPct, Perks: cfg.Loyalty12mPerk}
	case days <= loyalty24mDays:
		result = LoyaltyResult{Tier: entity.LoyaltyTier24m, DiscountPct: cfg.Loyalty24mPct, Perks: cfg.Loyalty24mPerk}
	}

	// A tier configured with no discount and no perk grants nothing; keep the
	// stored booking free of empty tier markers.
	if result.DiscountPct == 0 && result.Perks == "" {
		return LoyaltyResult{}
	}

	return result
}
