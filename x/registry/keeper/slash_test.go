package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keel-chain/keel/testutil/keeper"
	"github.com/keel-chain/keel/x/registry/types"
)

func authorityAddr() sdk.AccAddress {
	return authtypes.NewModuleAddress(govtypes.ModuleName)
}

func TestSlash_ReducesReputation(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()
	keepertest.RegisterTestAgent(t, k, ctx, agent)

	require.NoError(t, k.Slash(ctx, authorityAddr(), agent, 30, "missed delivery"))

	passport, err := k.GetPassport(ctx, agent)
	require.NoError(t, err)
	require.Equal(t, types.DefaultInitialReputation-30, passport.Reputation)
	require.True(t, passport.Active)
}

func TestSlash_FloorsAtZeroAndDeactivates(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()
	keepertest.RegisterTestAgent(t, k, ctx, agent)

	require.NoError(t, k.Slash(ctx, authorityAddr(), agent, types.DefaultInitialReputation+500, "fraud"))

	passport, err := k.GetPassport(ctx, agent)
	require.NoError(t, err)
	require.Zero(t, passport.Reputation)
	require.False(t, passport.Active)
	require.False(t, k.CheckEligibility(ctx, agent))
}

func TestSlash_CallerGate(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()
	stranger := testAddr()
	keepertest.RegisterTestAgent(t, k, ctx, agent)

	err := k.Slash(ctx, stranger, agent, 10, "nope")
	require.ErrorIs(t, err, types.ErrNotAuthorizedCaller)

	k.SetWhitelistedCaller(ctx, stranger)
	require.NoError(t, k.Slash(ctx, stranger, agent, 10, "late settlement"))
}

func TestSlash_ZeroPenaltyRejected(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()
	keepertest.RegisterTestAgent(t, k, ctx, agent)

	err := k.Slash(ctx, authorityAddr(), agent, 0, "noop")
	require.ErrorIs(t, err, types.ErrInvalidPenalty)
}

func TestDeactivateReactivate(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()
	keepertest.RegisterTestAgent(t, k, ctx, agent)

	require.NoError(t, k.Deactivate(ctx, agent))
	require.ErrorIs(t, k.Deactivate(ctx, agent), types.ErrAgentNotActive)
	require.False(t, k.CheckEligibility(ctx, agent))

	require.NoError(t, k.Reactivate(ctx, agent))
	require.ErrorIs(t, k.Reactivate(ctx, agent), types.ErrAlreadyActive)
	require.True(t, k.CheckEligibility(ctx, agent))
}

func TestReactivate_ZeroReputationRestoresInitial(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()
	keepertest.RegisterTestAgent(t, k, ctx, agent)

	require.NoError(t, k.Slash(ctx, authorityAddr(), agent, types.DefaultMaxReputation, "slashed to zero"))
	require.NoError(t, k.Reactivate(ctx, agent))

	passport, err := k.GetPassport(ctx, agent)
	require.NoError(t, err)
	require.Equal(t, types.DefaultInitialReputation, passport.Reputation)
	require.True(t, passport.Active)
}
