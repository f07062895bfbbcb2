package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keel-chain/keel/testutil/keeper"
	"github.com/keel-chain/keel/x/credit/types"
)

func TestStakeUnstake_RoundTrip(t *testing.T) {
	f := keepertest.NewFixture(t)
	agent := registeredAgent(t, f, 1_000_000)

	require.NoError(t, f.Credit.StakeCollateral(f.Ctx, agent, math.NewInt(600_000)))
	require.NoError(t, f.Credit.StakeCollateral(f.Ctx, agent, math.NewInt(400_000)))

	acct, found := f.Credit.GetCreditAccount(f.Ctx, agent)
	require.True(t, found)
	require.True(t, acct.Collateral.Equal(math.NewInt(1_000_000)))

	require.NoError(t, f.Credit.UnstakeCollateral(f.Ctx, agent, math.NewInt(1_000_000)))

	// Unstaking everything with no debt deletes the account.
	_, found = f.Credit.GetCreditAccount(f.Ctx, agent)
	require.False(t, found)

	balance := f.BankKeeper.GetBalance(f.Ctx, agent, types.DefaultPaymentDenom)
	require.True(t, balance.Amount.Equal(math.NewInt(1_000_000)))
}

func TestUnstake_MoreThanStaked(t *testing.T) {
	f := keepertest.NewFixture(t)
	agent := registeredAgent(t, f, 1_000_000)

	require.NoError(t, f.Credit.StakeCollateral(f.Ctx, agent, math.NewInt(100_000)))
	err := f.Credit.UnstakeCollateral(f.Ctx, agent, math.NewInt(100_001))
	require.ErrorIs(t, err, types.ErrInsufficientCollateral)
}

func TestUnstake_LockedByDebt(t *testing.T) {
	f := keepertest.NewFixture(t)
	lender := fundedAddr(t, f, 10_000_000)
	agent := registeredAgent(t, f, 1_000_000)

	_, err := f.Credit.Deposit(f.Ctx, lender, math.NewInt(10_000_000))
	require.NoError(t, err)
	require.NoError(t, f.Credit.StakeCollateral(f.Ctx, agent, math.NewInt(1_000_000)))
	_, err = f.Credit.Borrow(f.Ctx, agent, math.NewInt(2_500_000))
	require.NoError(t, err)

	// At 5x leverage, 2_500_000 of debt needs 500_000 collateral.
	err = f.Credit.UnstakeCollateral(f.Ctx, agent, math.NewInt(500_001))
	require.ErrorIs(t, err, types.ErrCollateralLocked)

	require.NoError(t, f.Credit.UnstakeCollateral(f.Ctx, agent, math.NewInt(500_000)))
}

func TestUnstake_BlockedWhenTierLost(t *testing.T) {
	f := keepertest.NewFixture(t)
	lender := fundedAddr(t, f, 10_000_000)
	agent := registeredAgent(t, f, 1_000_000)

	_, err := f.Credit.Deposit(f.Ctx, lender, math.NewInt(10_000_000))
	require.NoError(t, err)
	require.NoError(t, f.Credit.StakeCollateral(f.Ctx, agent, math.NewInt(1_000_000)))
	_, err = f.Credit.Borrow(f.Ctx, agent, math.NewInt(1_000_000))
	require.NoError(t, err)

	// Reputation collapse below every tier freezes collateral while debt
	// is outstanding.
	passport, err := f.Registry.GetPassport(f.Ctx, agent)
	require.NoError(t, err)
	passport.Reputation = 10
	require.NoError(t, f.Registry.SetPassport(f.Ctx, *passport))

	err = f.Credit.UnstakeCollateral(f.Ctx, agent, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrCollateralLocked)
}

func TestUnstake_NoAccount(t *testing.T) {
	f := keepertest.NewFixture(t)
	agent := registeredAgent(t, f, 1_000_000)

	err := f.Credit.UnstakeCollateral(f.Ctx, agent, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrNoCreditAccount)
}

func TestCreditGenesis_RoundTrip(t *testing.T) {
	f := keepertest.NewFixture(t)
	lender := fundedAddr(t, f, 5_000_000)
	agent := registeredAgent(t, f, 1_000_000)

	_, err := f.Credit.Deposit(f.Ctx, lender, math.NewInt(5_000_000))
	require.NoError(t, err)
	require.NoError(t, f.Credit.StakeCollateral(f.Ctx, agent, math.NewInt(1_000_000)))
	_, err = f.Credit.Borrow(f.Ctx, agent, math.NewInt(2_000_000))
	require.NoError(t, err)

	exported := f.Credit.ExportGenesis(f.Ctx)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Accounts, 1)
	require.Len(t, exported.Shares, 1)

	f2 := keepertest.NewFixture(t)
	f2.Credit.InitGenesis(f2.Ctx, *exported)

	reimported := f2.Credit.ExportGenesis(f2.Ctx)
	require.Equal(t, exported, reimported)
}
