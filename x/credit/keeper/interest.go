package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/credit/types"
)

// projectInterest returns the simple interest owed on principal over the
// elapsed seconds at the given annual rate in basis points.
//
//	interest = principal * rateBps * elapsed / (10000 * secondsPerYear)
func projectInterest(principal math.Int, rateBps uint32, elapsed int64) (math.Int, error) {
	if principal.IsZero() || elapsed <= 0 || rateBps == 0 {
		return math.ZeroInt(), nil
	}
	numerator, err := SafeMulDiv(
		principal,
		math.NewIntFromUint64(uint64(rateBps)).MulRaw(elapsed),
		math.NewInt(types.BpsDenominator).MulRaw(types.SecondsPerYear),
	)
	if err != nil {
		return math.Int{}, err
	}
	return numerator, nil
}

// accrueInterest rolls the account forward to the current block time,
// folding pending interest into InterestAccrued. Idempotent within a
// block since elapsed is zero on the second call.
func (k Keeper) accrueInterest(ctx sdk.Context, acct *types.CreditAccount) error {
	now := ctx.BlockTime().Unix()
	elapsed := now - acct.LastAccrual
	if elapsed <= 0 {
		acct.LastAccrual = now
		return nil
	}
	params := k.GetParams(ctx)
	interest, err := projectInterest(acct.Principal, params.InterestRateBps, elapsed)
	if err != nil {
		return err
	}
	if interest.IsPositive() {
		acct.InterestAccrued = acct.InterestAccrued.Add(interest)
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeInterestAccrued,
				sdk.NewAttribute(types.AttributeKeyAgent, acct.Agent),
				sdk.NewAttribute(types.AttributeKeyInterest, interest.String()),
			),
		)
	}
	acct.LastAccrual = now
	return nil
}

// creditLimit computes the agent's borrow ceiling from staked collateral
// and the reputation tier table. Ineligible or sub-tier agents get zero.
func (k Keeper) creditLimit(ctx sdk.Context, agent sdk.AccAddress, collateral math.Int) (math.Int, error) {
	if !k.registryKeeper.CheckEligibility(ctx, agent) {
		return math.ZeroInt(), nil
	}
	reputation, ok := k.registryKeeper.ReputationOf(ctx, agent)
	if !ok {
		return math.ZeroInt(), nil
	}
	params := k.GetParams(ctx)
	leverage := params.LeverageFor(reputation)
	if leverage == 0 {
		return math.ZeroInt(), nil
	}
	return SafeMul(collateral, math.NewIntFromUint64(uint64(leverage)))
}
