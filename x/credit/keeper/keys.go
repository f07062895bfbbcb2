package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// KVStore key prefixes for the credit module
var (
	AccountKeyPrefix = []byte{0x01}
	ShareKeyPrefix   = []byte{0x02}
	VaultStateKey    = []byte{0x03}
	ParamsKey        = []byte{0x04}
)

// AccountKey returns the store key for an agent's credit account.
func AccountKey(agent sdk.AccAddress) []byte {
	return append(AccountKeyPrefix, agent.Bytes()...)
}

// ShareKey returns the store key for a lender's vault share balance.
func ShareKey(lender sdk.AccAddress) []byte {
	return append(ShareKeyPrefix, lender.Bytes()...)
}
