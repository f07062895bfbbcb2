package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ProofVerifier checks an opaque proof against a verification program and
// its public values. Implementations must fail closed: malformed keys,
// proofs or inputs are verification failures, never a bypass.
type ProofVerifier interface {
	Verify(ctx sdk.Context, programID string, publicValues, proof []byte) (bool, error)
}

// ActionExecutor runs a settlement instruction on behalf of an agent once
// the strict-mode checks have all passed. Implemented by the settlement
// keeper and wired in after construction to break the module cycle.
type ActionExecutor interface {
	ExecuteAction(ctx sdk.Context, agent sdk.AccAddress, payload []byte) error
}
