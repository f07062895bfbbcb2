package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/keel-chain/keel/x/settlement/types"
)

// swapMarket extends the single-asset market with a second listing priced
// at half the first, so one unit of gold swaps into two units of bond.
func swapMarket(t *testing.T) *market {
	m := setupMarket(t)
	f := m.f

	bondIssuer := testAddr()
	require.NoError(t, f.Settlement.ListAsset(f.Ctx, testListing(bondIssuer, "urwabond", 500_000)))
	f.FundAccount(t, bondIssuer, "urwabond", math.NewInt(1_000_000))
	require.NoError(t, f.Settlement.RestockInventory(f.Ctx, bondIssuer, "urwabond", math.NewInt(1_000_000)))

	f.FundAccount(t, m.buyer, "urwagold", math.NewInt(100_000))
	return m
}

func TestSwapSettle_HappyPath(t *testing.T) {
	m := swapMarket(t)
	f := m.f

	bondListing, _ := f.Settlement.GetListing(f.Ctx, "urwabond")
	bondIssuer := bondListing.Issuer

	id, amountOut, err := f.Settlement.SwapSettle(
		f.Ctx, m.buyer, "urwagold", "urwabond",
		math.NewInt(10_000), math.NewInt(19_000), m.quoteExpiry(),
		complianceProof(), complianceValues(),
	)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.True(t, amountOut.Equal(math.NewInt(20_000)))

	// Asset-in routes to the asset-out issuer minus the fee in kind.
	issuerAddr := mustAccAddress(t, bondIssuer)
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, issuerAddr, "urwagold").Amount.Equal(math.NewInt(9_995)))
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, m.treasury, "urwagold").Amount.Equal(math.NewInt(5)))
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, m.buyer, "urwagold").Amount.Equal(math.NewInt(90_000)))
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, m.buyer, "urwabond").Amount.Equal(math.NewInt(20_000)))
	require.True(t, f.Settlement.Inventory(f.Ctx, "urwabond").Equal(math.NewInt(980_000)))

	// Volume is the payment value of the input leg.
	passport, err := f.Registry.GetPassport(f.Ctx, m.buyer)
	require.NoError(t, err)
	require.True(t, passport.LifetimeVolume.Equal(math.NewInt(10_000_000_000)))
	require.Equal(t, uint64(1), passport.SettlementCount)
}

func TestSwapSettle_SlippageFloor(t *testing.T) {
	m := swapMarket(t)
	f := m.f

	_, _, err := f.Settlement.SwapSettle(
		f.Ctx, m.buyer, "urwagold", "urwabond",
		math.NewInt(10_000), math.NewInt(20_001), m.quoteExpiry(),
		complianceProof(), complianceValues(),
	)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	// Nothing moved.
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, m.buyer, "urwagold").Amount.Equal(math.NewInt(100_000)))
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, m.buyer, "urwabond").Amount.IsZero())
}

func TestSwapSettle_UnlistedLeg(t *testing.T) {
	m := swapMarket(t)
	f := m.f

	_, _, err := f.Settlement.SwapSettle(
		f.Ctx, m.buyer, "urwasilver", "urwabond",
		math.NewInt(10_000), math.ZeroInt(), m.quoteExpiry(),
		complianceProof(), complianceValues(),
	)
	require.ErrorIs(t, err, types.ErrInvalidAsset)

	_, _, err = f.Settlement.SwapSettle(
		f.Ctx, m.buyer, "urwagold", "urwasilver",
		math.NewInt(10_000), math.ZeroInt(), m.quoteExpiry(),
		complianceProof(), complianceValues(),
	)
	require.ErrorIs(t, err, types.ErrInvalidAsset)
}

func TestSwapSettle_ExpiredQuote(t *testing.T) {
	m := swapMarket(t)
	f := m.f

	_, _, err := f.Settlement.SwapSettle(
		f.Ctx, m.buyer, "urwagold", "urwabond",
		math.NewInt(10_000), math.ZeroInt(), f.Ctx.BlockTime().Unix()-1,
		complianceProof(), complianceValues(),
	)
	require.ErrorIs(t, err, types.ErrQuoteExpired)
}

func TestSwapSettle_InsufficientInventory(t *testing.T) {
	m := swapMarket(t)
	f := m.f

	// 100k gold would price into 200k bond; stock only covers the first
	// 50k gold of input.
	f.FundAccount(t, m.buyer, "urwagold", math.NewInt(900_000))
	_, _, err := f.Settlement.SwapSettle(
		f.Ctx, m.buyer, "urwagold", "urwabond",
		math.NewInt(1_000_000), math.ZeroInt(), m.quoteExpiry(),
		complianceProof(), complianceValues(),
	)
	require.ErrorIs(t, err, types.ErrInsufficientInventory)
}

func TestSwapSettle_Paused(t *testing.T) {
	m := swapMarket(t)
	f := m.f
	f.Settlement.SetPaused(f.Ctx, true)

	_, _, err := f.Settlement.SwapSettle(
		f.Ctx, m.buyer, "urwagold", "urwabond",
		math.NewInt(10_000), math.ZeroInt(), m.quoteExpiry(),
		complianceProof(), complianceValues(),
	)
	require.ErrorIs(t, err, types.ErrPaused)
}
