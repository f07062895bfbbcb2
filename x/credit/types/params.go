package types

import (
	"sort"
)

// LeverageTier maps a minimum reputation score to a collateral multiplier.
type LeverageTier struct {
	MinReputation uint32 `json:"min_reputation"`
	Multiplier    uint32 `json:"multiplier"`
}

// Params holds the credit module parameters.
type Params struct {
	// InterestRateBps is the flat annual borrow rate in basis points.
	InterestRateBps uint32 `json:"interest_rate_bps"`
	// LiquidationThresholdBps is the minimum debt-to-collateral health
	// factor, in basis points, below which positions become liquidatable.
	LiquidationThresholdBps uint32 `json:"liquidation_threshold_bps"`
	// PaymentDenom is the denom accepted for deposits, collateral and debt.
	PaymentDenom string `json:"payment_denom"`
	// LeverageTiers maps reputation to credit multipliers, highest first.
	LeverageTiers []LeverageTier `json:"leverage_tiers"`
}

// Default parameter values.
const (
	DefaultInterestRateBps         = 500
	DefaultLiquidationThresholdBps = 12_000
	DefaultPaymentDenom            = "uusdc"
)

// DefaultLeverageTiers returns the standard reputation tier table.
func DefaultLeverageTiers() []LeverageTier {
	return []LeverageTier{
		{MinReputation: 95, Multiplier: 5},
		{MinReputation: 80, Multiplier: 3},
		{MinReputation: 50, Multiplier: 1},
	}
}

// DefaultParams returns the default credit parameters.
func DefaultParams() Params {
	return Params{
		InterestRateBps:         DefaultInterestRateBps,
		LiquidationThresholdBps: DefaultLiquidationThresholdBps,
		PaymentDenom:            DefaultPaymentDenom,
		LeverageTiers:           DefaultLeverageTiers(),
	}
}

// LeverageFor returns the multiplier for the given reputation score,
// or zero when no tier is met.
func (p Params) LeverageFor(reputation uint32) uint32 {
	for _, tier := range p.LeverageTiers {
		if reputation >= tier.MinReputation {
			return tier.Multiplier
		}
	}
	return 0
}

// Validate checks parameter invariants.
func (p Params) Validate() error {
	if p.InterestRateBps > BpsDenominator {
		return ErrInvalidParams.Wrapf("interest rate %d bps exceeds %d", p.InterestRateBps, BpsDenominator)
	}
	if p.LiquidationThresholdBps <= BpsDenominator {
		return ErrInvalidParams.Wrap("liquidation threshold must exceed 10000 bps")
	}
	if p.PaymentDenom == "" {
		return ErrInvalidParams.Wrap("payment denom must be set")
	}
	if len(p.LeverageTiers) == 0 {
		return ErrInvalidParams.Wrap("at least one leverage tier required")
	}
	if !sort.SliceIsSorted(p.LeverageTiers, func(i, j int) bool {
		return p.LeverageTiers[i].MinReputation > p.LeverageTiers[j].MinReputation
	}) {
		return ErrInvalidParams.Wrap("leverage tiers must be sorted by reputation, highest first")
	}
	for i, tier := range p.LeverageTiers {
		if tier.Multiplier == 0 {
			return ErrInvalidParams.Wrapf("tier %d has zero multiplier", i)
		}
	}
	return nil
}
