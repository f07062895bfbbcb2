package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/guard module sentinel errors
var (
	ErrBindingNotFound  = sdkerrors.Register(ModuleName, 2, "strategy binding not found")
	ErrInvalidModelHash = sdkerrors.Register(ModuleName, 3, "invalid model hash")
	ErrUnapprovedModel  = sdkerrors.Register(ModuleName, 4, "proof attests to an unapproved model")
	ErrNoBuySignal      = sdkerrors.Register(ModuleName, 5, "model prediction is not a buy signal")

	ErrProofVerificationFailed = sdkerrors.Register(ModuleName, 6, "proof verification failed")
	ErrMalformedPublicValues   = sdkerrors.Register(ModuleName, 7, "malformed public values")
	ErrProgramNotRegistered    = sdkerrors.Register(ModuleName, 8, "no verifying key registered for program")

	ErrNotDelegate        = sdkerrors.Register(ModuleName, 10, "caller is not the registered custody delegate")
	ErrNonceConsumed      = sdkerrors.Register(ModuleName, 11, "nonce already consumed")
	ErrInvalidNonce       = sdkerrors.Register(ModuleName, 12, "invalid nonce")
	ErrInvalidAttestation = sdkerrors.Register(ModuleName, 13, "attestation signature verification failed")
	ErrNoAttestationKey   = sdkerrors.Register(ModuleName, 14, "no attestation key registered for agent")
	ErrExecutorNotSet     = sdkerrors.Register(ModuleName, 15, "action executor is not wired")

	ErrInvalidAddress  = sdkerrors.Register(ModuleName, 30, "invalid address")
	ErrInvalidParams   = sdkerrors.Register(ModuleName, 31, "invalid module parameters")
	ErrUnmarshalFailed = sdkerrors.Register(ModuleName, 32, "failed to unmarshal stored value")
	ErrMarshalFailed   = sdkerrors.Register(ModuleName, 33, "failed to marshal value")
)
