package keeper

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/credit/types"
)

// GetParams returns the module parameters, defaulting when unset.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	bz := k.getStore(ctx).Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		k.Logger(ctx).Error("corrupt params, falling back to defaults", "error", err)
		return types.DefaultParams()
	}
	return params
}

// SetParams validates and stores the module parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	bz, err := json.Marshal(params)
	if err != nil {
		return types.ErrMarshalFailed.Wrapf("params: %s", err)
	}
	k.getStore(ctx).Set(ParamsKey, bz)
	return nil
}
