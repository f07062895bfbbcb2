package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keel-chain/keel/testutil/keeper"
	"github.com/keel-chain/keel/x/settlement/keeper"
	"github.com/keel-chain/keel/x/settlement/types"
)

func TestSettlementGenesis_RoundTrip(t *testing.T) {
	source := keepertest.NewFixture(t)
	issuer := testAddr()
	treasury := testAddr()

	params := source.Settlement.GetParams(source.Ctx)
	params.Treasury = treasury.String()
	params.FeeBps = 25
	require.NoError(t, source.Settlement.SetParams(source.Ctx, params))
	require.NoError(t, source.Settlement.ListAsset(source.Ctx, testListing(issuer, "urwagold", 1_000)))
	require.NoError(t, source.Settlement.ListAsset(source.Ctx, testListing(issuer, "urwabond", 3_000)))
	require.NoError(t, source.Settlement.DelistAsset(source.Ctx, "urwabond"))
	source.Settlement.SetPaused(source.Ctx, true)

	exported := source.Settlement.ExportGenesis(source.Ctx)
	require.NoError(t, exported.Validate())

	restored := keepertest.NewFixture(t)
	restored.Settlement.InitGenesis(restored.Ctx, *exported)

	require.Equal(t, params, restored.Settlement.GetParams(restored.Ctx))
	require.True(t, restored.Settlement.IsPaused(restored.Ctx))

	gold, found := restored.Settlement.GetListing(restored.Ctx, "urwagold")
	require.True(t, found)
	require.True(t, gold.Active)
	bond, found := restored.Settlement.GetListing(restored.Ctx, "urwabond")
	require.True(t, found)
	require.False(t, bond.Active)
}

func TestGenesisValidate_DuplicateListing(t *testing.T) {
	issuer := testAddr()
	gs := types.GenesisState{
		Params: types.DefaultParams(),
		Listings: []types.AssetListing{
			testListing(issuer, "urwagold", 1_000),
			testListing(issuer, "urwagold", 2_000),
		},
	}
	require.Error(t, gs.Validate())
}

func TestInvariants_CleanState(t *testing.T) {
	m := setupMarket(t)
	f := m.f

	_, _, _, err := f.Settlement.Settle(
		f.Ctx, m.buyer, "urwagold", math.NewInt(1), m.quoteExpiry(),
		complianceProof(), complianceValues(), types.DirectAuthorization{},
	)
	require.NoError(t, err)

	_, broken := keeper.AllInvariants(f.Settlement)(f.Ctx)
	require.False(t, broken)
}
