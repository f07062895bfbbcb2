package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keel-chain/keel/testutil/keeper"
	"github.com/keel-chain/keel/x/settlement/types"
)

func testAddr() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

func mustAccAddress(t *testing.T, bech string) sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(bech)
	require.NoError(t, err)
	return addr
}

func testListing(issuer sdk.AccAddress, denom string, price int64) types.AssetListing {
	return types.AssetListing{
		Denom:        denom,
		Issuer:       issuer.String(),
		CircuitID:    "rwa-compliance-v1",
		PricePerUnit: math.NewInt(price),
	}
}

func TestListAsset_StoresActiveListing(t *testing.T) {
	f := keepertest.NewFixture(t)
	issuer := testAddr()

	require.NoError(t, f.Settlement.ListAsset(f.Ctx, testListing(issuer, "urwagold", 1_000)))

	got, found := f.Settlement.GetListing(f.Ctx, "urwagold")
	require.True(t, found)
	require.True(t, got.Active)
	require.Equal(t, issuer.String(), got.Issuer)
	require.True(t, got.PricePerUnit.Equal(math.NewInt(1_000)))
}

func TestListAsset_DuplicateDenom(t *testing.T) {
	f := keepertest.NewFixture(t)
	issuer := testAddr()

	require.NoError(t, f.Settlement.ListAsset(f.Ctx, testListing(issuer, "urwagold", 1_000)))
	err := f.Settlement.ListAsset(f.Ctx, testListing(issuer, "urwagold", 2_000))
	require.ErrorIs(t, err, types.ErrListingExists)
}

func TestListAsset_RejectsInvalidListing(t *testing.T) {
	f := keepertest.NewFixture(t)
	issuer := testAddr()

	zeroPrice := testListing(issuer, "urwagold", 1_000)
	zeroPrice.PricePerUnit = math.ZeroInt()
	require.Error(t, f.Settlement.ListAsset(f.Ctx, zeroPrice))

	noCircuit := testListing(issuer, "urwabond", 1_000)
	noCircuit.CircuitID = ""
	require.Error(t, f.Settlement.ListAsset(f.Ctx, noCircuit))
}

func TestUpdateListing_Missing(t *testing.T) {
	f := keepertest.NewFixture(t)

	err := f.Settlement.UpdateListing(f.Ctx, testListing(testAddr(), "urwagold", 1_000))
	require.ErrorIs(t, err, types.ErrInvalidAsset)
}

func TestUpdateListing_RepricesAsset(t *testing.T) {
	f := keepertest.NewFixture(t)
	issuer := testAddr()

	require.NoError(t, f.Settlement.ListAsset(f.Ctx, testListing(issuer, "urwagold", 1_000)))

	updated := testListing(issuer, "urwagold", 2_500)
	updated.Active = true
	require.NoError(t, f.Settlement.UpdateListing(f.Ctx, updated))

	got, found := f.Settlement.GetListing(f.Ctx, "urwagold")
	require.True(t, found)
	require.True(t, got.PricePerUnit.Equal(math.NewInt(2_500)))
}

func TestDelistAsset_KeepsInactiveRecord(t *testing.T) {
	f := keepertest.NewFixture(t)
	issuer := testAddr()

	require.NoError(t, f.Settlement.ListAsset(f.Ctx, testListing(issuer, "urwagold", 1_000)))
	require.NoError(t, f.Settlement.DelistAsset(f.Ctx, "urwagold"))

	got, found := f.Settlement.GetListing(f.Ctx, "urwagold")
	require.True(t, found)
	require.False(t, got.Active)

	require.ErrorIs(t, f.Settlement.DelistAsset(f.Ctx, "urwasilver"), types.ErrInvalidAsset)
}

func TestRestockInventory(t *testing.T) {
	f := keepertest.NewFixture(t)
	issuer := testAddr()
	f.FundAccount(t, issuer, "urwagold", math.NewInt(500_000))

	require.NoError(t, f.Settlement.ListAsset(f.Ctx, testListing(issuer, "urwagold", 1_000)))
	require.NoError(t, f.Settlement.RestockInventory(f.Ctx, issuer, "urwagold", math.NewInt(300_000)))

	require.True(t, f.Settlement.Inventory(f.Ctx, "urwagold").Equal(math.NewInt(300_000)))

	// A second restock accumulates.
	require.NoError(t, f.Settlement.RestockInventory(f.Ctx, issuer, "urwagold", math.NewInt(200_000)))
	require.True(t, f.Settlement.Inventory(f.Ctx, "urwagold").Equal(math.NewInt(500_000)))
}

func TestRestockInventory_RequiresActiveListing(t *testing.T) {
	f := keepertest.NewFixture(t)
	issuer := testAddr()
	f.FundAccount(t, issuer, "urwagold", math.NewInt(500_000))

	err := f.Settlement.RestockInventory(f.Ctx, issuer, "urwagold", math.NewInt(100_000))
	require.ErrorIs(t, err, types.ErrInvalidAsset)

	require.NoError(t, f.Settlement.ListAsset(f.Ctx, testListing(issuer, "urwagold", 1_000)))
	require.NoError(t, f.Settlement.DelistAsset(f.Ctx, "urwagold"))
	err = f.Settlement.RestockInventory(f.Ctx, issuer, "urwagold", math.NewInt(100_000))
	require.ErrorIs(t, err, types.ErrInvalidAsset)
}

func TestRestockInventory_ZeroAmount(t *testing.T) {
	f := keepertest.NewFixture(t)
	issuer := testAddr()

	require.NoError(t, f.Settlement.ListAsset(f.Ctx, testListing(issuer, "urwagold", 1_000)))
	err := f.Settlement.RestockInventory(f.Ctx, issuer, "urwagold", math.ZeroInt())
	require.ErrorIs(t, err, types.ErrZeroAmount)
}

func TestGetAllListings(t *testing.T) {
	f := keepertest.NewFixture(t)
	issuer := testAddr()

	require.NoError(t, f.Settlement.ListAsset(f.Ctx, testListing(issuer, "urwagold", 1_000)))
	require.NoError(t, f.Settlement.ListAsset(f.Ctx, testListing(issuer, "urwabond", 3_000)))

	listings := f.Settlement.GetAllListings(f.Ctx)
	require.Len(t, listings, 2)
}
