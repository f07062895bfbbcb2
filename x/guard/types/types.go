package types

import (
	"encoding/hex"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// StrategyBinding pins an agent to an approved model hash and tracks the
// verified-inference counters that feed its intelligence score. Strict
// mode additionally records a custody delegate and its attestation key.
type StrategyBinding struct {
	Agent             string `json:"agent"`
	ModelHash         string `json:"model_hash"`
	InferenceCount    uint64 `json:"inference_count"`
	IntelligenceScore uint64 `json:"intelligence_score"`
	DelegateAddress   string `json:"delegate_address,omitempty"`
	AttestationPubKey []byte `json:"attestation_pub_key,omitempty"`
}

// NewStrategyBinding creates a binding for the agent with the given model
// hash and zeroed counters.
func NewStrategyBinding(agent sdk.AccAddress, modelHash string) StrategyBinding {
	return StrategyBinding{
		Agent:     agent.String(),
		ModelHash: modelHash,
	}
}

// ModelHashBytes decodes the stored hex model hash.
func (b StrategyBinding) ModelHashBytes() ([]byte, error) {
	bz, err := hex.DecodeString(b.ModelHash)
	if err != nil {
		return nil, ErrInvalidModelHash.Wrapf("not hex: %s", err)
	}
	if len(bz) != ModelHashLength {
		return nil, ErrInvalidModelHash.Wrapf("expected %d bytes, got %d", ModelHashLength, len(bz))
	}
	return bz, nil
}

// Validate performs stateless sanity checks on a stored binding.
func (b StrategyBinding) Validate() error {
	if _, err := sdk.AccAddressFromBech32(b.Agent); err != nil {
		return ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	bz, err := b.ModelHashBytes()
	if err != nil {
		return err
	}
	if isZeroHash(bz) {
		return ErrInvalidModelHash.Wrap("model hash is all zeroes")
	}
	if b.DelegateAddress != "" {
		if _, err := sdk.AccAddressFromBech32(b.DelegateAddress); err != nil {
			return ErrInvalidAddress.Wrapf("delegate: %s", err)
		}
	}
	return nil
}

func isZeroHash(bz []byte) bool {
	for _, b := range bz {
		if b != 0 {
			return false
		}
	}
	return true
}

// ValidateModelHash checks a hex model hash without building a binding.
func ValidateModelHash(modelHash string) error {
	bz, err := hex.DecodeString(modelHash)
	if err != nil {
		return ErrInvalidModelHash.Wrapf("not hex: %s", err)
	}
	if len(bz) != ModelHashLength {
		return ErrInvalidModelHash.Wrapf("expected %d bytes, got %d", ModelHashLength, len(bz))
	}
	if isZeroHash(bz) {
		return ErrInvalidModelHash.Wrap("model hash is all zeroes")
	}
	return nil
}
