package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	keepertest "github.com/keel-chain/keel/testutil/keeper"
	"github.com/keel-chain/keel/x/registry/types"
)

func TestCheckEligibility(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()

	eligible, reason := k.CheckEligibilityWithReason(ctx, agent)
	require.False(t, eligible)
	require.Equal(t, "not registered", reason)

	keepertest.RegisterTestAgent(t, k, ctx, agent)
	eligible, reason = k.CheckEligibilityWithReason(ctx, agent)
	require.True(t, eligible)
	require.Equal(t, "eligible", reason)

	// Slash to just below the eligibility floor.
	penalty := types.DefaultInitialReputation - types.DefaultMinEligibilityScore + 1
	require.NoError(t, k.Slash(ctx, authorityAddr(), agent, penalty, "below floor"))
	eligible, _ = k.CheckEligibilityWithReason(ctx, agent)
	require.False(t, eligible)

	rep, active := k.ReputationOf(ctx, agent)
	require.Equal(t, types.DefaultMinEligibilityScore-1, rep)
	require.True(t, active)
}

func TestCheckEligibility_ExactThreshold(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()
	keepertest.RegisterTestAgent(t, k, ctx, agent)

	penalty := types.DefaultInitialReputation - types.DefaultMinEligibilityScore
	require.NoError(t, k.Slash(ctx, authorityAddr(), agent, penalty, "at floor"))

	// Reputation exactly at the minimum still qualifies.
	require.True(t, k.CheckEligibility(ctx, agent))
}

func TestReputationOf_Unregistered(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)

	rep, active := k.ReputationOf(ctx, testAddr())
	require.Zero(t, rep)
	require.False(t, active)
}

func TestIsAgentVerified_WindowExpiry(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	ctx = ctx.WithBlockTime(time.Unix(1_700_000_000, 0))
	agent := testAddr()
	caller := testAddr()
	keepertest.RegisterTestAgent(t, k, ctx, agent)
	k.SetWhitelistedCaller(ctx, caller)

	require.False(t, k.IsAgentVerified(ctx, agent))

	require.NoError(t, k.RecordSettlement(ctx, caller, agent, types.DefaultVolumePerPoint))
	require.True(t, k.IsAgentVerified(ctx, agent))

	expired := ctx.WithBlockTime(ctx.BlockTime().Add(time.Duration(types.DefaultVerifiedWindowSeconds+1) * time.Second))
	require.False(t, k.IsAgentVerified(expired, agent))
}
