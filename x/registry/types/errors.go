package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Registry module sentinel errors
var (
	// Registration errors
	ErrAlreadyRegistered      = sdkerrors.Register(ModuleName, 2, "agent already registered")
	ErrInvalidMembershipProof = sdkerrors.Register(ModuleName, 3, "invalid membership proof")
	ErrInvalidCommitment      = sdkerrors.Register(ModuleName, 4, "identity commitment not derivable from agent address")

	// Passport lookup / lifecycle errors
	ErrPassportNotFound = sdkerrors.Register(ModuleName, 10, "passport not found")
	ErrAgentNotActive   = sdkerrors.Register(ModuleName, 11, "agent passport is not active")
	ErrAlreadyActive    = sdkerrors.Register(ModuleName, 12, "agent passport is already active")

	// Authorization errors
	ErrNotAuthorizedCaller = sdkerrors.Register(ModuleName, 20, "caller is not allow-listed for reputation updates")
	ErrUnauthorized        = sdkerrors.Register(ModuleName, 21, "unauthorized operation")

	// Validation errors
	ErrInvalidAddress    = sdkerrors.Register(ModuleName, 30, "invalid address")
	ErrInvalidVolume     = sdkerrors.Register(ModuleName, 31, "settlement volume must be positive")
	ErrInvalidPenalty    = sdkerrors.Register(ModuleName, 32, "slash penalty must be positive")
	ErrInvalidRoot       = sdkerrors.Register(ModuleName, 33, "membership root must be 32 bytes")
	ErrInvalidParams     = sdkerrors.Register(ModuleName, 34, "invalid module parameters")
	ErrUnmarshalFailed   = sdkerrors.Register(ModuleName, 35, "failed to unmarshal stored record")
	ErrMarshalFailed     = sdkerrors.Register(ModuleName, 36, "failed to marshal record")
	ErrInvalidKeyLength  = sdkerrors.Register(ModuleName, 37, "invalid key length")
	ErrZeroReputationCap = sdkerrors.Register(ModuleName, 38, "max reputation must be positive")
)
