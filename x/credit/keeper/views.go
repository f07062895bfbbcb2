package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/credit/types"
)

// GetCreditLimit returns the agent's current borrow ceiling. Read-only.
func (k Keeper) GetCreditLimit(ctx sdk.Context, agent sdk.AccAddress) math.Int {
	acct, found := k.GetCreditAccount(ctx, agent)
	if !found {
		return math.ZeroInt()
	}
	limit, err := k.creditLimit(ctx, agent, acct.Collateral)
	if err != nil {
		return math.ZeroInt()
	}
	return limit
}

// GetDebt returns the agent's outstanding debt projected to the current
// block time, without mutating state.
func (k Keeper) GetDebt(ctx sdk.Context, agent sdk.AccAddress) math.Int {
	acct, found := k.GetCreditAccount(ctx, agent)
	if !found {
		return math.ZeroInt()
	}
	params := k.GetParams(ctx)
	pending, err := projectInterest(acct.Principal, params.InterestRateBps, ctx.BlockTime().Unix()-acct.LastAccrual)
	if err != nil {
		return acct.Debt()
	}
	return acct.Debt().Add(pending)
}

// GetHealthFactor returns the position's collateral-to-debt ratio in
// basis points, projected to the current block time. The second return
// is false when the agent has no debt.
func (k Keeper) GetHealthFactor(ctx sdk.Context, agent sdk.AccAddress) (math.Int, bool) {
	acct, found := k.GetCreditAccount(ctx, agent)
	if !found {
		return math.ZeroInt(), false
	}
	debt := k.GetDebt(ctx, agent)
	if debt.IsZero() {
		return math.ZeroInt(), false
	}
	if acct.Collateral.IsZero() {
		return math.ZeroInt(), true
	}
	hf, err := SafeMulDiv(acct.Collateral, math.NewInt(types.BpsDenominator), debt)
	if err != nil {
		return math.ZeroInt(), true
	}
	return hf, true
}

// GetVaultStats returns the aggregate vault accounting for queries.
func (k Keeper) GetVaultStats(ctx sdk.Context) types.VaultState {
	return k.GetVaultState(ctx)
}
