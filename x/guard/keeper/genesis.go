package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/guard/types"
)

// InitGenesis initializes the guard module state from genesis.
func (k *Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	for _, binding := range genState.Bindings {
		if err := k.SetBinding(ctx, binding); err != nil {
			panic(err)
		}
	}
	for _, vk := range genState.VerifyingKeys {
		if err := k.SetVerifyingKey(ctx, vk.ProgramID, vk.KeyData); err != nil {
			panic(err)
		}
	}
	for _, cn := range genState.ConsumedNonces {
		owner, err := sdk.AccAddressFromBech32(cn.Owner)
		if err != nil {
			panic(err)
		}
		if err := k.nonces.Consume(ctx, owner, cn.Nonce); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the module's exported genesis state. Consumed
// nonces are gathered per bound agent; strict mode only ever consumes
// nonces for agents with a binding.
func (k *Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	genState := &types.GenesisState{
		Params:   k.GetParams(ctx),
		Bindings: k.GetAllBindings(ctx),
	}
	k.IterateVerifyingKeys(ctx, func(programID string, keyData []byte) bool {
		genState.VerifyingKeys = append(genState.VerifyingKeys, types.StoredVerifyingKey{
			ProgramID: programID,
			KeyData:   keyData,
		})
		return false
	})
	for _, binding := range genState.Bindings {
		owner, err := sdk.AccAddressFromBech32(binding.Agent)
		if err != nil {
			continue
		}
		k.nonces.IterateConsumed(ctx, owner, func(nonce uint64, consumedAt int64) bool {
			genState.ConsumedNonces = append(genState.ConsumedNonces, types.ConsumedNonce{
				Owner:      binding.Agent,
				Nonce:      nonce,
				ConsumedAt: consumedAt,
			})
			return false
		})
	}
	return genState
}
