package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/keel-chain/keel/x/shared/keeper"

	"github.com/keel-chain/keel/x/settlement/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the settlement MsgServer.
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (ms msgServer) ListAsset(goCtx context.Context, msg *types.MsgListAsset) (*types.MsgListAssetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := sharedkeeper.ValidateAuthority(ms.GetAuthority(), msg.Authority); err != nil {
		return nil, err
	}
	if err := ms.Keeper.ListAsset(ctx, msg.Listing); err != nil {
		return nil, err
	}
	return &types.MsgListAssetResponse{}, nil
}

func (ms msgServer) UpdateListing(goCtx context.Context, msg *types.MsgUpdateListing) (*types.MsgUpdateListingResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := sharedkeeper.ValidateAuthority(ms.GetAuthority(), msg.Authority); err != nil {
		return nil, err
	}
	if err := ms.Keeper.UpdateListing(ctx, msg.Listing); err != nil {
		return nil, err
	}
	return &types.MsgUpdateListingResponse{}, nil
}

func (ms msgServer) DelistAsset(goCtx context.Context, msg *types.MsgDelistAsset) (*types.MsgDelistAssetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := sharedkeeper.ValidateAuthority(ms.GetAuthority(), msg.Authority); err != nil {
		return nil, err
	}
	if err := ms.Keeper.DelistAsset(ctx, msg.AssetDenom); err != nil {
		return nil, err
	}
	return &types.MsgDelistAssetResponse{}, nil
}

func (ms msgServer) Settle(goCtx context.Context, msg *types.MsgSettle) (*types.MsgSettleResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("buyer: %s", err)
	}
	auth, err := types.DecodeFundsAuthorization(msg.AuthTag, msg.AuthPayload)
	if err != nil {
		return nil, err
	}
	id, totalPrice, fee, err := ms.Keeper.Settle(ctx, buyer, msg.AssetDenom, msg.Amount, msg.QuoteExpiry, msg.Proof, msg.PublicValues, auth)
	if err != nil {
		return nil, err
	}
	return &types.MsgSettleResponse{SettlementID: id, TotalPrice: totalPrice, Fee: fee}, nil
}

func (ms msgServer) SwapSettle(goCtx context.Context, msg *types.MsgSwapSettle) (*types.MsgSwapSettleResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("buyer: %s", err)
	}
	id, amountOut, err := ms.Keeper.SwapSettle(ctx, buyer, msg.AssetIn, msg.AssetOut, msg.AmountIn, msg.MinAmountOut, msg.QuoteExpiry, msg.Proof, msg.PublicValues)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapSettleResponse{SettlementID: id, AmountOut: amountOut}, nil
}

func (ms msgServer) RestockInventory(goCtx context.Context, msg *types.MsgRestockInventory) (*types.MsgRestockInventoryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := sharedkeeper.ValidateAuthority(ms.GetAuthority(), msg.Authority); err != nil {
		return nil, err
	}
	from, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	if err := ms.Keeper.RestockInventory(ctx, from, msg.AssetDenom, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgRestockInventoryResponse{}, nil
}

func (ms msgServer) SetPaused(goCtx context.Context, msg *types.MsgSetPaused) (*types.MsgSetPausedResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := sharedkeeper.ValidateAuthority(ms.GetAuthority(), msg.Authority); err != nil {
		return nil, err
	}
	ms.Keeper.SetPaused(ctx, msg.Paused)
	return &types.MsgSetPausedResponse{}, nil
}

func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := sharedkeeper.ValidateAuthority(ms.GetAuthority(), msg.Authority); err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
