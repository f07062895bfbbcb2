package types

import (
	"fmt"
)

// StoredVerifyingKey is a verifying key registered for one program id.
type StoredVerifyingKey struct {
	ProgramID string `json:"program_id"`
	KeyData   []byte `json:"key_data"`
}

// ConsumedNonce is an exported consumed-nonce record.
type ConsumedNonce struct {
	Owner      string `json:"owner"`
	Nonce      uint64 `json:"nonce"`
	ConsumedAt int64  `json:"consumed_at"`
}

// GenesisState holds the guard module genesis data.
type GenesisState struct {
	Params         Params               `json:"params"`
	Bindings       []StrategyBinding    `json:"bindings"`
	VerifyingKeys  []StoredVerifyingKey `json:"verifying_keys"`
	ConsumedNonces []ConsumedNonce      `json:"consumed_nonces"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(gs.Bindings))
	for _, binding := range gs.Bindings {
		if _, ok := seen[binding.Agent]; ok {
			return ErrInvalidParams.Wrapf("duplicate binding for %s", binding.Agent)
		}
		seen[binding.Agent] = struct{}{}
		if err := binding.Validate(); err != nil {
			return err
		}
	}
	seenKeys := make(map[string]struct{}, len(gs.VerifyingKeys))
	for _, vk := range gs.VerifyingKeys {
		if vk.ProgramID == "" {
			return ErrInvalidParams.Wrap("verifying key with empty program id")
		}
		if _, ok := seenKeys[vk.ProgramID]; ok {
			return ErrInvalidParams.Wrapf("duplicate verifying key for %s", vk.ProgramID)
		}
		seenKeys[vk.ProgramID] = struct{}{}
		if len(vk.KeyData) == 0 {
			return ErrInvalidParams.Wrapf("empty verifying key for %s", vk.ProgramID)
		}
	}
	seenNonces := make(map[string]struct{}, len(gs.ConsumedNonces))
	for _, cn := range gs.ConsumedNonces {
		key := fmt.Sprintf("%s/%d", cn.Owner, cn.Nonce)
		if _, ok := seenNonces[key]; ok {
			return ErrInvalidParams.Wrapf("duplicate consumed nonce %d for %s", cn.Nonce, cn.Owner)
		}
		seenNonces[key] = struct{}{}
	}
	return nil
}
