package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the settlement module message handling interface.
type MsgServer interface {
	ListAsset(context.Context, *MsgListAsset) (*MsgListAssetResponse, error)
	UpdateListing(context.Context, *MsgUpdateListing) (*MsgUpdateListingResponse, error)
	DelistAsset(context.Context, *MsgDelistAsset) (*MsgDelistAssetResponse, error)
	Settle(context.Context, *MsgSettle) (*MsgSettleResponse, error)
	SwapSettle(context.Context, *MsgSwapSettle) (*MsgSwapSettleResponse, error)
	RestockInventory(context.Context, *MsgRestockInventory) (*MsgRestockInventoryResponse, error)
	SetPaused(context.Context, *MsgSetPaused) (*MsgSetPausedResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

type MsgListAssetResponse struct{}

type MsgUpdateListingResponse struct{}

type MsgDelistAssetResponse struct{}

type MsgSettleResponse struct {
	SettlementID string   `json:"settlement_id"`
	TotalPrice   math.Int `json:"total_price"`
	Fee          math.Int `json:"fee"`
}

type MsgSwapSettleResponse struct {
	SettlementID string   `json:"settlement_id"`
	AmountOut    math.Int `json:"amount_out"`
}

type MsgRestockInventoryResponse struct{}

type MsgSetPausedResponse struct{}

type MsgUpdateParamsResponse struct{}
