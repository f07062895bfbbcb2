package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keel-chain/keel/testutil/keeper"
	"github.com/keel-chain/keel/x/credit/types"
)

func testAddr() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

func fundedAddr(t *testing.T, f *keepertest.Fixture, amount int64) sdk.AccAddress {
	addr := testAddr()
	f.FundAccount(t, addr, types.DefaultPaymentDenom, math.NewInt(amount))
	return addr
}

// registeredAgent funds an address and gives it a passport so it passes
// the eligibility gate.
func registeredAgent(t *testing.T, f *keepertest.Fixture, amount int64) sdk.AccAddress {
	agent := fundedAddr(t, f, amount)
	keepertest.RegisterTestAgent(t, f.Registry, f.Ctx, agent)
	return agent
}

func TestDeposit_FirstMintsOneToOne(t *testing.T) {
	f := keepertest.NewFixture(t)
	lender := fundedAddr(t, f, 5_000_000)

	minted, err := f.Credit.Deposit(f.Ctx, lender, math.NewInt(1_000_000))
	require.NoError(t, err)
	require.True(t, minted.Equal(math.NewInt(1_000_000)))

	vault := f.Credit.GetVaultState(f.Ctx)
	require.True(t, vault.TotalShares.Equal(math.NewInt(1_000_000)))
	require.True(t, vault.TotalDeposits.Equal(math.NewInt(1_000_000)))
	require.True(t, f.Credit.GetShares(f.Ctx, lender).Equal(minted))

	balance := f.BankKeeper.GetBalance(f.Ctx, lender, types.DefaultPaymentDenom)
	require.True(t, balance.Amount.Equal(math.NewInt(4_000_000)))
}

func TestDeposit_SecondLenderProportional(t *testing.T) {
	f := keepertest.NewFixture(t)
	first := fundedAddr(t, f, 1_000_000)
	second := fundedAddr(t, f, 1_000_000)

	_, err := f.Credit.Deposit(f.Ctx, first, math.NewInt(1_000_000))
	require.NoError(t, err)

	minted, err := f.Credit.Deposit(f.Ctx, second, math.NewInt(500_000))
	require.NoError(t, err)
	require.True(t, minted.Equal(math.NewInt(500_000)))

	vault := f.Credit.GetVaultState(f.Ctx)
	require.True(t, vault.TotalShares.Equal(math.NewInt(1_500_000)))
	require.True(t, vault.TotalDeposits.Equal(math.NewInt(1_500_000)))
}

func TestDeposit_ZeroRejected(t *testing.T) {
	f := keepertest.NewFixture(t)
	lender := fundedAddr(t, f, 1_000_000)

	_, err := f.Credit.Deposit(f.Ctx, lender, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrZeroAmount)

	_, err = f.Credit.Deposit(f.Ctx, lender, math.NewInt(-5))
	require.ErrorIs(t, err, types.ErrZeroAmount)
}

func TestWithdraw_RoundTrip(t *testing.T) {
	f := keepertest.NewFixture(t)
	lender := fundedAddr(t, f, 2_000_000)

	minted, err := f.Credit.Deposit(f.Ctx, lender, math.NewInt(2_000_000))
	require.NoError(t, err)

	out, err := f.Credit.Withdraw(f.Ctx, lender, minted)
	require.NoError(t, err)
	require.True(t, out.Equal(math.NewInt(2_000_000)))

	require.True(t, f.Credit.GetShares(f.Ctx, lender).IsZero())
	vault := f.Credit.GetVaultState(f.Ctx)
	require.True(t, vault.TotalShares.IsZero())
	require.True(t, vault.TotalDeposits.IsZero())

	balance := f.BankKeeper.GetBalance(f.Ctx, lender, types.DefaultPaymentDenom)
	require.True(t, balance.Amount.Equal(math.NewInt(2_000_000)))
}

func TestWithdraw_InsufficientShares(t *testing.T) {
	f := keepertest.NewFixture(t)
	lender := fundedAddr(t, f, 1_000_000)

	_, err := f.Credit.Deposit(f.Ctx, lender, math.NewInt(1_000_000))
	require.NoError(t, err)

	_, err = f.Credit.Withdraw(f.Ctx, lender, math.NewInt(1_000_001))
	require.ErrorIs(t, err, types.ErrInsufficientShares)

	_, err = f.Credit.Withdraw(f.Ctx, testAddr(), math.NewInt(1))
	require.ErrorIs(t, err, types.ErrInsufficientShares)
}

func TestWithdraw_BlockedByOutstandingLoans(t *testing.T) {
	f := keepertest.NewFixture(t)
	lender := fundedAddr(t, f, 1_000_000)
	agent := registeredAgent(t, f, 1_000_000)

	_, err := f.Credit.Deposit(f.Ctx, lender, math.NewInt(1_000_000))
	require.NoError(t, err)

	require.NoError(t, f.Credit.StakeCollateral(f.Ctx, agent, math.NewInt(200_000)))
	_, err = f.Credit.Borrow(f.Ctx, agent, math.NewInt(800_000))
	require.NoError(t, err)

	// Only 200_000 of the deposit base is idle.
	_, err = f.Credit.Withdraw(f.Ctx, lender, math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)

	_, err = f.Credit.Withdraw(f.Ctx, lender, math.NewInt(200_000))
	require.NoError(t, err)
}

func TestVault_InterestSocializedAcrossShares(t *testing.T) {
	f := keepertest.NewFixture(t)
	lender := fundedAddr(t, f, 1_000_000)
	agent := registeredAgent(t, f, 2_000_000)

	minted, err := f.Credit.Deposit(f.Ctx, lender, math.NewInt(1_000_000))
	require.NoError(t, err)

	require.NoError(t, f.Credit.StakeCollateral(f.Ctx, agent, math.NewInt(500_000)))
	_, err = f.Credit.Borrow(f.Ctx, agent, math.NewInt(1_000_000))
	require.NoError(t, err)

	// One year at the default 500 bps accrues 50_000 interest.
	f.AdvanceTime(time.Duration(types.SecondsPerYear) * time.Second)
	interestPaid, principalPaid, err := f.Credit.Repay(f.Ctx, agent, math.NewInt(1_050_000))
	require.NoError(t, err)
	require.True(t, interestPaid.Equal(math.NewInt(50_000)))
	require.True(t, principalPaid.Equal(math.NewInt(1_000_000)))

	// The sole lender's shares now redeem at a premium.
	out, err := f.Credit.Withdraw(f.Ctx, lender, minted)
	require.NoError(t, err)
	require.True(t, out.Equal(math.NewInt(1_050_000)))
}
