package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/google/uuid"

	"github.com/keel-chain/keel/x/settlement/types"
)

// GetQuote prices a prospective settlement. Quotes are pure projections;
// nothing is reserved and nothing is stored.
func (k *Keeper) GetQuote(ctx sdk.Context, assetDenom string, amount math.Int) (types.Quote, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return types.Quote{}, types.ErrZeroAmount
	}
	listing, err := k.activeListing(ctx, assetDenom)
	if err != nil {
		return types.Quote{}, err
	}
	params := k.GetParams(ctx)

	totalPrice, err := SafeMul(amount, listing.PricePerUnit)
	if err != nil {
		return types.Quote{}, err
	}
	fee, err := SafeMulDiv(totalPrice, math.NewIntFromUint64(uint64(params.FeeBps)), math.NewInt(types.BpsDenominator))
	if err != nil {
		return types.Quote{}, err
	}

	return types.Quote{
		QuoteID:    uuid.NewString(),
		AssetDenom: assetDenom,
		Amount:     amount,
		TotalPrice: totalPrice,
		Fee:        fee,
		Expiry:     ctx.BlockTime().Unix() + params.QuoteValiditySeconds,
	}, nil
}
