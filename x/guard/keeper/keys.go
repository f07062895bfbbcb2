package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// KVStore key prefixes for the guard module
var (
	BindingKeyPrefix      = []byte{0x01}
	VerifyingKeyPrefix    = []byte{0x02}
	ParamsKey             = []byte{0x03}
	ConsumedNoncePrefix   = []byte{0x04}
)

// BindingKey returns the store key for an agent's strategy binding.
func BindingKey(agent sdk.AccAddress) []byte {
	return append(BindingKeyPrefix, agent.Bytes()...)
}

// VerifyingKeyKey returns the store key for a program's verifying key.
func VerifyingKeyKey(programID string) []byte {
	return append(VerifyingKeyPrefix, []byte(programID)...)
}
