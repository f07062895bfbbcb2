package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/credit/types"
)

// InitGenesis initializes the credit module state from genesis.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	if err := k.SetVaultState(ctx, genState.Vault); err != nil {
		panic(err)
	}
	for _, share := range genState.Shares {
		lender, err := sdk.AccAddressFromBech32(share.Lender)
		if err != nil {
			panic(err)
		}
		if err := k.setShares(ctx, lender, share.Shares); err != nil {
			panic(err)
		}
	}
	for _, acct := range genState.Accounts {
		if err := k.SetCreditAccount(ctx, acct); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	genState := &types.GenesisState{
		Params:   k.GetParams(ctx),
		Vault:    k.GetVaultState(ctx),
		Accounts: k.GetAllCreditAccounts(ctx),
	}
	k.IterateShares(ctx, func(lender sdk.AccAddress, shares math.Int) bool {
		genState.Shares = append(genState.Shares, types.VaultShare{
			Lender: lender.String(),
			Shares: shares,
		})
		return false
	})
	return genState
}
