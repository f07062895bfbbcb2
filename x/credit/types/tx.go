package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the credit module message handling interface.
type MsgServer interface {
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	StakeCollateral(context.Context, *MsgStakeCollateral) (*MsgStakeCollateralResponse, error)
	UnstakeCollateral(context.Context, *MsgUnstakeCollateral) (*MsgUnstakeCollateralResponse, error)
	Borrow(context.Context, *MsgBorrow) (*MsgBorrowResponse, error)
	Repay(context.Context, *MsgRepay) (*MsgRepayResponse, error)
	Liquidate(context.Context, *MsgLiquidate) (*MsgLiquidateResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

type MsgDepositResponse struct {
	SharesMinted math.Int `json:"shares_minted"`
}

type MsgWithdrawResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

type MsgStakeCollateralResponse struct{}

type MsgUnstakeCollateralResponse struct{}

type MsgBorrowResponse struct {
	CreditLimit math.Int `json:"credit_limit"`
}

type MsgRepayResponse struct {
	InterestPaid  math.Int `json:"interest_paid"`
	PrincipalPaid math.Int `json:"principal_paid"`
}

type MsgLiquidateResponse struct {
	DebtCovered    math.Int `json:"debt_covered"`
	CollateralPaid math.Int `json:"collateral_paid"`
}

type MsgUpdateParamsResponse struct{}
