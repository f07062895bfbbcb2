package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// PassportKeyPrefix is the prefix for passport store keys
	PassportKeyPrefix = []byte{0x01}

	// MembershipRootKey is the key for the published membership root
	MembershipRootKey = []byte{0x02}

	// WhitelistedCallerKeyPrefix is the prefix for allow-listed caller keys
	WhitelistedCallerKeyPrefix = []byte{0x03}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x04}
)

// PassportKey returns the store key for an agent's passport
func PassportKey(agent sdk.AccAddress) []byte {
	return append(PassportKeyPrefix, agent.Bytes()...)
}

// WhitelistedCallerKey returns the store key for an allow-listed caller
func WhitelistedCallerKey(caller sdk.AccAddress) []byte {
	return append(WhitelistedCallerKeyPrefix, caller.Bytes()...)
}
