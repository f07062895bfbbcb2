package types

import (
	"encoding/hex"
	"fmt"
)

// GenesisState defines the registry module's genesis state.
type GenesisState struct {
	Params             Params     `json:"params"`
	MembershipRoot     string     `json:"membership_root,omitempty"` // hex, 32 bytes
	Passports          []Passport `json:"passports"`
	WhitelistedCallers []string   `json:"whitelisted_callers"`
}

// DefaultGenesis returns the default genesis state for the registry module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:             DefaultParams(),
		Passports:          []Passport{},
		WhitelistedCallers: []string{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.MembershipRoot != "" {
		root, err := hex.DecodeString(gs.MembershipRoot)
		if err != nil || len(root) != 32 {
			return ErrInvalidRoot.Wrapf("membership root %q", gs.MembershipRoot)
		}
	}
	seen := make(map[string]struct{}, len(gs.Passports))
	for _, passport := range gs.Passports {
		if err := passport.Validate(gs.Params.MaxReputation); err != nil {
			return fmt.Errorf("passport %s: %w", passport.Agent, err)
		}
		if _, ok := seen[passport.Agent]; ok {
			return fmt.Errorf("duplicate passport for agent %s", passport.Agent)
		}
		seen[passport.Agent] = struct{}{}
	}
	callers := make(map[string]struct{}, len(gs.WhitelistedCallers))
	for _, caller := range gs.WhitelistedCallers {
		if caller == "" {
			return ErrInvalidAddress.Wrap("empty whitelisted caller")
		}
		if _, ok := callers[caller]; ok {
			return fmt.Errorf("duplicate whitelisted caller %s", caller)
		}
		callers[caller] = struct{}{}
	}
	return nil
}
