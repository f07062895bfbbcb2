package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keel-chain/keel/testutil/keeper"
	registrykeeper "github.com/keel-chain/keel/x/registry/keeper"
)

func TestGenesis_RoundTrip(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()
	caller := testAddr()

	keepertest.RegisterTestAgent(t, k, ctx, agent)
	k.SetWhitelistedCaller(ctx, caller)
	require.NoError(t, k.RecordSettlement(ctx, caller, agent, math.NewInt(2_000_000)))

	exported := k.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Passports, 1)
	require.Equal(t, []string{caller.String()}, exported.WhitelistedCallers)
	require.NotEmpty(t, exported.MembershipRoot)

	k2, ctx2 := keepertest.RegistryKeeper(t)
	k2.InitGenesis(ctx2, *exported)

	reimported := k2.ExportGenesis(ctx2)
	require.Equal(t, exported, reimported)

	passport, err := k2.GetPassport(ctx2, agent)
	require.NoError(t, err)
	require.Equal(t, uint64(1), passport.SettlementCount)
	require.True(t, k2.IsWhitelistedCaller(ctx2, caller))
}

func TestInvariants_Clean(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()
	keepertest.RegisterTestAgent(t, k, ctx, agent)

	_, broken := registrykeeper.AllInvariants(*k)(ctx)
	require.False(t, broken)
}

func TestInvariants_ZeroReputationActive(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()
	keepertest.RegisterTestAgent(t, k, ctx, agent)

	passport, err := k.GetPassport(ctx, agent)
	require.NoError(t, err)
	passport.Reputation = 0
	require.NoError(t, k.SetPassport(ctx, *passport))

	_, broken := registrykeeper.ZeroReputationInactiveInvariant(*k)(ctx)
	require.True(t, broken)
}
