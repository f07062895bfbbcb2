package types

import (
	"cosmossdk.io/math"
)

// Default registry parameter values
const (
	DefaultInitialReputation   = uint32(100)
	DefaultMinEligibilityScore = uint32(50)
	DefaultMaxReputation       = uint32(1000)
	// DefaultVerifiedWindowSeconds is the compliance cache window extended on
	// every recorded settlement (30 days).
	DefaultVerifiedWindowSeconds = int64(30 * 24 * 3600)
)

// DefaultVolumePerPoint is the settlement volume required per reputation
// point boost (6-decimal fixed point payment units).
var DefaultVolumePerPoint = math.NewInt(1_000_000)

// Params defines the registry module parameters.
type Params struct {
	InitialReputation     uint32   `json:"initial_reputation"`
	MinEligibilityScore   uint32   `json:"min_eligibility_score"`
	MaxReputation         uint32   `json:"max_reputation"`
	VolumePerPoint        math.Int `json:"volume_per_point"`
	VerifiedWindowSeconds int64    `json:"verified_window_seconds"`
}

// DefaultParams returns the default registry parameters.
func DefaultParams() Params {
	return Params{
		InitialReputation:     DefaultInitialReputation,
		MinEligibilityScore:   DefaultMinEligibilityScore,
		MaxReputation:         DefaultMaxReputation,
		VolumePerPoint:        DefaultVolumePerPoint,
		VerifiedWindowSeconds: DefaultVerifiedWindowSeconds,
	}
}

// Validate checks parameter invariants.
func (p Params) Validate() error {
	if p.MaxReputation == 0 {
		return ErrZeroReputationCap
	}
	if p.InitialReputation > p.MaxReputation {
		return ErrInvalidParams.Wrapf("initial reputation %d exceeds maximum %d", p.InitialReputation, p.MaxReputation)
	}
	if p.MinEligibilityScore > p.MaxReputation {
		return ErrInvalidParams.Wrapf("minimum eligibility score %d exceeds maximum %d", p.MinEligibilityScore, p.MaxReputation)
	}
	if p.VolumePerPoint.IsNil() || !p.VolumePerPoint.IsPositive() {
		return ErrInvalidParams.Wrap("volume per point must be positive")
	}
	if p.VerifiedWindowSeconds <= 0 {
		return ErrInvalidParams.Wrap("verified window must be positive")
	}
	return nil
}
