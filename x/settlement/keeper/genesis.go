package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/settlement/types"
)

// InitGenesis initializes the settlement module state from genesis.
func (k *Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	for _, listing := range genState.Listings {
		if err := k.SetListing(ctx, listing); err != nil {
			panic(err)
		}
	}
	k.setSettlementCounter(ctx, genState.SettlementCounter)
	if genState.Paused {
		k.SetPaused(ctx, true)
	}
}

// ExportGenesis returns the module's exported genesis state.
func (k *Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:            k.GetParams(ctx),
		Listings:          k.GetAllListings(ctx),
		SettlementCounter: k.getSettlementCounter(ctx),
		Paused:            k.IsPaused(ctx),
	}
}
