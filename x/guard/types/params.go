package types

import (
	"cosmossdk.io/math"
)

// Params holds the guard module parameters.
type Params struct {
	// ProgramID identifies the verification program inference proofs are
	// checked against.
	ProgramID string `json:"program_id"`
	// ScoreReward is added to the intelligence score per verified inference.
	ScoreReward uint64 `json:"score_reward"`
	// BaseCredit scales the informational proof-of-intelligence credit.
	BaseCredit math.Int `json:"base_credit"`
}

// Default parameter values.
const (
	DefaultProgramID   = "strategy-inference-v1"
	DefaultScoreReward = 10
)

// DefaultBaseCredit returns the default proof-of-intelligence base credit.
func DefaultBaseCredit() math.Int {
	return math.NewInt(1_000_000)
}

// DefaultParams returns the default guard parameters.
func DefaultParams() Params {
	return Params{
		ProgramID:   DefaultProgramID,
		ScoreReward: DefaultScoreReward,
		BaseCredit:  DefaultBaseCredit(),
	}
}

// Validate checks parameter invariants.
func (p Params) Validate() error {
	if p.ProgramID == "" {
		return ErrInvalidParams.Wrap("program id must be set")
	}
	if p.BaseCredit.IsNil() || p.BaseCredit.IsNegative() {
		return ErrInvalidParams.Wrap("base credit must be non-negative")
	}
	return nil
}
