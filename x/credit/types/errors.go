package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/credit module sentinel errors
var (
	ErrZeroAmount          = sdkerrors.Register(ModuleName, 2, "amount must be positive")
	ErrInsufficientShares  = sdkerrors.Register(ModuleName, 3, "insufficient vault shares")
	ErrInsufficientLiquidity = sdkerrors.Register(ModuleName, 4, "insufficient vault liquidity")
	ErrVaultEmpty          = sdkerrors.Register(ModuleName, 5, "vault has no deposits")

	ErrNotEligible    = sdkerrors.Register(ModuleName, 10, "agent is not eligible to borrow")
	ErrNoCreditAccount     = sdkerrors.Register(ModuleName, 11, "credit account not found")
	ErrInsufficientCredit = sdkerrors.Register(ModuleName, 12, "borrow exceeds credit limit")
	ErrNoDebt              = sdkerrors.Register(ModuleName, 13, "account has no outstanding debt")
	ErrCollateralLocked    = sdkerrors.Register(ModuleName, 14, "collateral is required against outstanding debt")
	ErrInsufficientCollateral = sdkerrors.Register(ModuleName, 15, "insufficient staked collateral")

	ErrNotLiquidatable = sdkerrors.Register(ModuleName, 20, "position is above the liquidation threshold")

	ErrInvalidAddress   = sdkerrors.Register(ModuleName, 30, "invalid address")
	ErrInvalidParams    = sdkerrors.Register(ModuleName, 31, "invalid module parameters")
	ErrUnmarshalFailed  = sdkerrors.Register(ModuleName, 32, "failed to unmarshal stored value")
	ErrMarshalFailed    = sdkerrors.Register(ModuleName, 33, "failed to marshal value")
	ErrArithmeticOverflow = sdkerrors.Register(ModuleName, 34, "arithmetic overflow")
	ErrDivisionByZero   = sdkerrors.Register(ModuleName, 35, "division by zero")
)
