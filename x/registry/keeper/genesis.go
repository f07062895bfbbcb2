package keeper

import (
	"encoding/hex"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/registry/types"
)

// InitGenesis initializes the registry module state from genesis
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	if genState.MembershipRoot != "" {
		root, err := hex.DecodeString(genState.MembershipRoot)
		if err != nil {
			panic(err)
		}
		if err := k.SetMembershipRoot(ctx, root); err != nil {
			panic(err)
		}
	}
	for _, passport := range genState.Passports {
		if err := k.SetPassport(ctx, passport); err != nil {
			panic(err)
		}
	}
	for _, caller := range genState.WhitelistedCallers {
		addr, err := sdk.AccAddressFromBech32(caller)
		if err != nil {
			panic(err)
		}
		k.SetWhitelistedCaller(ctx, addr)
	}
}

// ExportGenesis exports the registry module state for genesis
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}
	passports, err := k.GetAllPassports(ctx)
	if err != nil {
		panic(err)
	}

	genState := &types.GenesisState{
		Params:             params,
		Passports:          passports,
		WhitelistedCallers: k.GetWhitelistedCallers(ctx),
	}
	if root, err := k.GetMembershipRoot(ctx); err == nil {
		genState.MembershipRoot = hex.EncodeToString(root)
	}
	return genState
}
