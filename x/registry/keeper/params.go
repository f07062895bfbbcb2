package keeper

import (
	"context"
	"encoding/json"

	"github.com/keel-chain/keel/x/registry/types"
)

// GetParams returns the current registry parameters from the store
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	bz := k.getStore(ctx).Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.Params{}, types.ErrUnmarshalFailed.Wrapf("params: %v", err)
	}
	return params, nil
}

// SetParams validates and stores the registry parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	bz, err := json.Marshal(params)
	if err != nil {
		return types.ErrMarshalFailed.Wrapf("params: %v", err)
	}
	k.getStore(ctx).Set(ParamsKey, bz)
	return nil
}
