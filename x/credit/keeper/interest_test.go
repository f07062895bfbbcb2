package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keel-chain/keel/testutil/keeper"
	"github.com/keel-chain/keel/x/credit/types"
)

func borrowerWithDebt(t *testing.T, f *keepertest.Fixture, principal int64) sdk.AccAddress {
	t.Helper()
	lender := fundedAddr(t, f, 10_000_000)
	agent := registeredAgent(t, f, 2_000_000)

	_, err := f.Credit.Deposit(f.Ctx, lender, math.NewInt(10_000_000))
	require.NoError(t, err)
	require.NoError(t, f.Credit.StakeCollateral(f.Ctx, agent, math.NewInt(2_000_000)))
	_, err = f.Credit.Borrow(f.Ctx, agent, math.NewInt(principal))
	require.NoError(t, err)

	return agent
}

func TestInterest_AnnualRate(t *testing.T) {
	f := keepertest.NewFixture(t)
	agent := borrowerWithDebt(t, f, 1_000_000)

	// 500 bps simple interest over exactly one year is 5% of principal.
	f.AdvanceTime(time.Duration(types.SecondsPerYear) * time.Second)
	require.True(t, f.Credit.GetDebt(f.Ctx, agent).Equal(math.NewInt(1_050_000)))
}

func TestInterest_SplitAccrualEqualsSingleAccrual(t *testing.T) {
	single := keepertest.NewFixture(t)
	split := keepertest.NewFixture(t)

	a := borrowerWithDebt(t, single, 1_000_000)
	b := borrowerWithDebt(t, split, 1_000_000)

	// One fixture accrues once over a year; the other is forced through a
	// mid-year accrual by a state-mutating call.
	single.AdvanceTime(time.Duration(types.SecondsPerYear) * time.Second)

	split.AdvanceTime(time.Duration(types.SecondsPerYear/2) * time.Second)
	require.NoError(t, split.Credit.StakeCollateral(split.Ctx, b, math.NewInt(1)))
	split.AdvanceTime(time.Duration(types.SecondsPerYear-types.SecondsPerYear/2) * time.Second)

	debtSingle := single.Credit.GetDebt(single.Ctx, a)
	debtSplit := split.Credit.GetDebt(split.Ctx, b)
	require.True(t, debtSingle.Equal(debtSplit), "single %s split %s", debtSingle, debtSplit)
}

func TestInterest_NoRetroactiveRateChange(t *testing.T) {
	f := keepertest.NewFixture(t)
	agent := borrowerWithDebt(t, f, 1_000_000)

	f.AdvanceTime(time.Duration(types.SecondsPerYear/2) * time.Second)
	// Touch the account so the first half-year is folded in at 500 bps.
	require.NoError(t, f.Credit.StakeCollateral(f.Ctx, agent, math.NewInt(1)))

	params := f.Credit.GetParams(f.Ctx)
	params.InterestRateBps = 1000
	require.NoError(t, f.Credit.SetParams(f.Ctx, params))

	f.AdvanceTime(time.Duration(types.SecondsPerYear-types.SecondsPerYear/2) * time.Second)

	// 25_000 at the old rate plus 50_000 at the new one.
	require.True(t, f.Credit.GetDebt(f.Ctx, agent).Equal(math.NewInt(1_075_000)))
}
