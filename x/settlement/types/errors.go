package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/settlement module sentinel errors
var (
	ErrPaused                = sdkerrors.Register(ModuleName, 2, "settlement is paused")
	ErrInvalidAsset          = sdkerrors.Register(ModuleName, 3, "asset is not listed or not active")
	ErrZeroAmount            = sdkerrors.Register(ModuleName, 4, "amount must be positive")
	ErrQuoteExpired          = sdkerrors.Register(ModuleName, 5, "quote has expired")
	ErrInvalidProof          = sdkerrors.Register(ModuleName, 6, "compliance proof rejected")
	ErrInsufficientInventory = sdkerrors.Register(ModuleName, 7, "insufficient asset inventory")
	ErrSlippageExceeded      = sdkerrors.Register(ModuleName, 8, "realized output below minimum")
	ErrListingExists         = sdkerrors.Register(ModuleName, 9, "asset is already listed")

	ErrInvalidAuthorization    = sdkerrors.Register(ModuleName, 10, "funds authorization rejected")
	ErrAuthorizationExpired    = sdkerrors.Register(ModuleName, 11, "funds authorization expired")
	ErrUnknownAuthorizationTag = sdkerrors.Register(ModuleName, 12, "unknown funds authorization tag")
	ErrNonceConsumed           = sdkerrors.Register(ModuleName, 13, "authorization nonce already consumed")
	ErrInvalidNonce            = sdkerrors.Register(ModuleName, 14, "invalid authorization nonce")
	ErrOracleUnavailable       = sdkerrors.Register(ModuleName, 15, "no price available for route")
	ErrInvalidActionPayload    = sdkerrors.Register(ModuleName, 16, "malformed settlement action payload")

	ErrInvalidAddress  = sdkerrors.Register(ModuleName, 30, "invalid address")
	ErrInvalidParams   = sdkerrors.Register(ModuleName, 31, "invalid module parameters")
	ErrUnmarshalFailed = sdkerrors.Register(ModuleName, 32, "failed to unmarshal stored value")
	ErrMarshalFailed   = sdkerrors.Register(ModuleName, 33, "failed to marshal value")
)
