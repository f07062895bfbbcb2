package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// CheckEligibility reports whether an agent may participate in credit and
// settlement operations. This is the single predicate every other module
// depends on; it is a pure read with no side effects.
func (k Keeper) CheckEligibility(ctx context.Context, agent sdk.AccAddress) bool {
	eligible, _ := k.CheckEligibilityWithReason(ctx, agent)
	return eligible
}

// CheckEligibilityWithReason returns the eligibility predicate along with
// a human-readable reason, for status surfaces and audit logs.
func (k Keeper) CheckEligibilityWithReason(ctx context.Context, agent sdk.AccAddress) (bool, string) {
	passport, err := k.GetPassport(ctx, agent)
	if err != nil {
		return false, "not registered"
	}
	if !passport.Active {
		return false, "passport deactivated"
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return false, "parameters unavailable"
	}
	if passport.Reputation < params.MinEligibilityScore {
		return false, fmt.Sprintf("reputation %d below minimum %d", passport.Reputation, params.MinEligibilityScore)
	}
	return true, "eligible"
}

// ReputationOf returns an agent's reputation score and active flag. Agents
// without a passport report (0, false).
func (k Keeper) ReputationOf(ctx context.Context, agent sdk.AccAddress) (uint32, bool) {
	passport, err := k.GetPassport(ctx, agent)
	if err != nil {
		return 0, false
	}
	return passport.Reputation, passport.Active
}

// IsAgentVerified reports whether the agent's compliance window, extended
// on every recorded settlement, has not yet expired.
func (k Keeper) IsAgentVerified(ctx context.Context, agent sdk.AccAddress) bool {
	passport, err := k.GetPassport(ctx, agent)
	if err != nil || !passport.Active {
		return false
	}
	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	return passport.VerifiedUntil > now
}
