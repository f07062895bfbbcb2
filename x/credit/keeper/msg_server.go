package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/keel-chain/keel/x/shared/keeper"

	"github.com/keel-chain/keel/x/credit/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the credit MsgServer.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (ms msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	lender, err := sdk.AccAddressFromBech32(msg.Lender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("lender: %s", err)
	}
	minted, err := ms.Keeper.Deposit(ctx, lender, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgDepositResponse{SharesMinted: minted}, nil
}

func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	lender, err := sdk.AccAddressFromBech32(msg.Lender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("lender: %s", err)
	}
	amountOut, err := ms.Keeper.Withdraw(ctx, lender, msg.Shares)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawResponse{AmountOut: amountOut}, nil
}

func (ms msgServer) StakeCollateral(goCtx context.Context, msg *types.MsgStakeCollateral) (*types.MsgStakeCollateralResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	agent, err := sdk.AccAddressFromBech32(msg.Agent)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	if err := ms.Keeper.StakeCollateral(ctx, agent, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgStakeCollateralResponse{}, nil
}

func (ms msgServer) UnstakeCollateral(goCtx context.Context, msg *types.MsgUnstakeCollateral) (*types.MsgUnstakeCollateralResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	agent, err := sdk.AccAddressFromBech32(msg.Agent)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	if err := ms.Keeper.UnstakeCollateral(ctx, agent, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgUnstakeCollateralResponse{}, nil
}

func (ms msgServer) Borrow(goCtx context.Context, msg *types.MsgBorrow) (*types.MsgBorrowResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	agent, err := sdk.AccAddressFromBech32(msg.Agent)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	limit, err := ms.Keeper.Borrow(ctx, agent, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgBorrowResponse{CreditLimit: limit}, nil
}

func (ms msgServer) Repay(goCtx context.Context, msg *types.MsgRepay) (*types.MsgRepayResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	agent, err := sdk.AccAddressFromBech32(msg.Agent)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	interestPaid, principalPaid, err := ms.Keeper.Repay(ctx, agent, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgRepayResponse{InterestPaid: interestPaid, PrincipalPaid: principalPaid}, nil
}

func (ms msgServer) Liquidate(goCtx context.Context, msg *types.MsgLiquidate) (*types.MsgLiquidateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	liquidator, err := sdk.AccAddressFromBech32(msg.Liquidator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("liquidator: %s", err)
	}
	agent, err := sdk.AccAddressFromBech32(msg.Agent)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	debtCovered, collateralPaid, err := ms.Keeper.Liquidate(ctx, liquidator, agent)
	if err != nil {
		return nil, err
	}
	return &types.MsgLiquidateResponse{DebtCovered: debtCovered, CollateralPaid: collateralPaid}, nil
}

func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
