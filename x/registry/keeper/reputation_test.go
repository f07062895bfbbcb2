package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keel-chain/keel/testutil/keeper"
	"github.com/keel-chain/keel/x/registry/types"
)

func TestRecordSettlement_RequiresWhitelistedCaller(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()
	caller := testAddr()
	keepertest.RegisterTestAgent(t, k, ctx, agent)

	err := k.RecordSettlement(ctx, caller, agent, math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrNotAuthorizedCaller)

	k.SetWhitelistedCaller(ctx, caller)
	require.NoError(t, k.RecordSettlement(ctx, caller, agent, math.NewInt(1_000_000)))

	k.RemoveWhitelistedCaller(ctx, caller)
	err = k.RecordSettlement(ctx, caller, agent, math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrNotAuthorizedCaller)
}

func TestRecordSettlement_BoostsReputationAndVolume(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	ctx = ctx.WithBlockTime(time.Unix(1_700_000_000, 0))
	agent := testAddr()
	caller := testAddr()
	keepertest.RegisterTestAgent(t, k, ctx, agent)
	k.SetWhitelistedCaller(ctx, caller)

	// 3.5 volume points boost by floor(3.5) = 3.
	volume := types.DefaultVolumePerPoint.MulRaw(7).QuoRaw(2)
	require.NoError(t, k.RecordSettlement(ctx, caller, agent, volume))

	passport, err := k.GetPassport(ctx, agent)
	require.NoError(t, err)
	require.Equal(t, types.DefaultInitialReputation+3, passport.Reputation)
	require.Equal(t, uint64(1), passport.SettlementCount)
	require.True(t, passport.LifetimeVolume.Equal(volume))
	require.Equal(t, ctx.BlockTime().Unix()+types.DefaultVerifiedWindowSeconds, passport.VerifiedUntil)
	require.True(t, k.IsAgentVerified(ctx, agent))
}

func TestRecordSettlement_ReputationSaturates(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()
	caller := testAddr()
	keepertest.RegisterTestAgent(t, k, ctx, agent)
	k.SetWhitelistedCaller(ctx, caller)

	huge := types.DefaultVolumePerPoint.MulRaw(1_000_000)
	require.NoError(t, k.RecordSettlement(ctx, caller, agent, huge))

	passport, err := k.GetPassport(ctx, agent)
	require.NoError(t, err)
	require.Equal(t, types.DefaultMaxReputation, passport.Reputation)
}

func TestRecordSettlement_RejectsInactiveAndBadVolume(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()
	caller := testAddr()
	keepertest.RegisterTestAgent(t, k, ctx, agent)
	k.SetWhitelistedCaller(ctx, caller)

	err := k.RecordSettlement(ctx, caller, agent, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidVolume)

	require.NoError(t, k.Deactivate(ctx, agent))
	err = k.RecordSettlement(ctx, caller, agent, math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrAgentNotActive)
}

func TestRecordSettlement_UnknownAgent(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	caller := testAddr()
	k.SetWhitelistedCaller(ctx, caller)

	err := k.RecordSettlement(ctx, caller, testAddr(), math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrPassportNotFound)
}
