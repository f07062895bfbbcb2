package types

import (
	"encoding/hex"

	"cosmossdk.io/math"
)

// Passport is the per-agent identity and reputation record. Passports are
// never deleted; deactivation flips the Active flag.
type Passport struct {
	Agent              string   `json:"agent"`
	IdentityCommitment string   `json:"identity_commitment"` // hex, 32 bytes
	Reputation         uint32   `json:"reputation"`
	RegisteredAt       int64    `json:"registered_at"` // unix seconds
	SettlementCount    uint64   `json:"settlement_count"`
	LifetimeVolume     math.Int `json:"lifetime_volume"`
	VerifiedUntil      int64    `json:"verified_until,omitempty"` // unix seconds, compliance window
	Active             bool     `json:"active"`
}

// Validate checks structural well-formedness of a passport record.
func (p Passport) Validate(maxReputation uint32) error {
	if p.Agent == "" {
		return ErrInvalidAddress.Wrap("passport agent address is empty")
	}
	commitment, err := hex.DecodeString(p.IdentityCommitment)
	if err != nil || len(commitment) != 32 {
		return ErrInvalidCommitment.Wrapf("commitment %q is not a 32-byte hex string", p.IdentityCommitment)
	}
	if p.Reputation > maxReputation {
		return ErrInvalidParams.Wrapf("reputation %d exceeds maximum %d", p.Reputation, maxReputation)
	}
	if p.LifetimeVolume.IsNil() || p.LifetimeVolume.IsNegative() {
		return ErrInvalidVolume.Wrap("lifetime volume must be non-negative")
	}
	if p.Reputation == 0 && p.Active {
		return ErrInvalidParams.Wrap("passport with zero reputation must be inactive")
	}
	return nil
}
