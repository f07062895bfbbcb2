package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/credit/types"
)

// Borrow draws vault liquidity against the agent's collateral. The new
// total debt must stay within the reputation-derived credit limit.
func (k Keeper) Borrow(ctx sdk.Context, agent sdk.AccAddress, amount math.Int) (math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrZeroAmount
	}
	if !k.registryKeeper.CheckEligibility(ctx, agent) {
		return math.Int{}, types.ErrNotEligible
	}
	acct, found := k.GetCreditAccount(ctx, agent)
	if !found {
		return math.Int{}, types.ErrNoCreditAccount.Wrap("stake collateral before borrowing")
	}
	if err := k.accrueInterest(ctx, &acct); err != nil {
		return math.Int{}, err
	}

	limit, err := k.creditLimit(ctx, agent, acct.Collateral)
	if err != nil {
		return math.Int{}, err
	}
	newDebt := acct.Debt().Add(amount)
	if newDebt.GT(limit) {
		return math.Int{}, types.ErrInsufficientCredit.Wrapf(
			"debt %s would exceed limit %s", newDebt, limit)
	}

	vault := k.GetVaultState(ctx)
	if amount.GT(vault.AvailableLiquidity()) {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrapf(
			"available %s, requested %s", vault.AvailableLiquidity(), amount)
	}

	vault.TotalBorrowed = vault.TotalBorrowed.Add(amount)
	if err := k.SetVaultState(ctx, vault); err != nil {
		return math.Int{}, err
	}
	acct.Principal = acct.Principal.Add(amount)
	if err := k.SetCreditAccount(ctx, acct); err != nil {
		return math.Int{}, err
	}

	params := k.GetParams(ctx)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, agent, types.Coin(params.PaymentDenom, amount)); err != nil {
		return math.Int{}, err
	}

	k.metrics.BorrowsTotal.Inc()
	k.metrics.TotalBorrowed.Set(float64(vault.TotalBorrowed.Int64()))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBorrow,
			sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyPrincipal, acct.Principal.String()),
			sdk.NewAttribute(types.AttributeKeyCreditLimit, limit.String()),
		),
	)
	k.Logger(ctx).Info("credit drawn", "agent", agent.String(), "amount", amount.String(), "limit", limit.String())
	return limit, nil
}

// Repay pays down the agent's debt, interest first. Repaid interest is
// folded into TotalDeposits so yield accrues to all vault shares.
// Overpayment is capped at the outstanding debt.
func (k Keeper) Repay(ctx sdk.Context, agent sdk.AccAddress, amount math.Int) (interestPaid, principalPaid math.Int, err error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount
	}
	acct, found := k.GetCreditAccount(ctx, agent)
	if !found {
		return math.Int{}, math.Int{}, types.ErrNoCreditAccount
	}
	if err := k.accrueInterest(ctx, &acct); err != nil {
		return math.Int{}, math.Int{}, err
	}
	debt := acct.Debt()
	if debt.IsZero() {
		return math.Int{}, math.Int{}, types.ErrNoDebt
	}
	pay := math.MinInt(amount, debt)

	interestPaid = math.MinInt(pay, acct.InterestAccrued)
	principalPaid = pay.Sub(interestPaid)

	params := k.GetParams(ctx)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, agent, types.ModuleName, types.Coin(params.PaymentDenom, pay)); err != nil {
		return math.Int{}, math.Int{}, err
	}

	acct.InterestAccrued = acct.InterestAccrued.Sub(interestPaid)
	acct.Principal = acct.Principal.Sub(principalPaid)
	if err := k.SetCreditAccount(ctx, acct); err != nil {
		return math.Int{}, math.Int{}, err
	}

	vault := k.GetVaultState(ctx)
	vault.TotalBorrowed = vault.TotalBorrowed.Sub(principalPaid)
	vault.TotalDeposits = vault.TotalDeposits.Add(interestPaid)
	if err := k.SetVaultState(ctx, vault); err != nil {
		return math.Int{}, math.Int{}, err
	}

	k.metrics.RepaysTotal.Inc()
	k.metrics.InterestCollected.Add(float64(interestPaid.Int64()))
	k.metrics.TotalBorrowed.Set(float64(vault.TotalBorrowed.Int64()))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRepay,
			sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
			sdk.NewAttribute(types.AttributeKeyInterestPaid, interestPaid.String()),
			sdk.NewAttribute(types.AttributeKeyPrincipalPaid, principalPaid.String()),
		),
	)
	k.Logger(ctx).Info("credit repaid", "agent", agent.String(), "interest", interestPaid.String(), "principal", principalPaid.String())
	return interestPaid, principalPaid, nil
}

// Liquidate closes an undercollateralized position. The liquidator pays
// the full outstanding debt and receives the staked collateral. Only
// positions whose debt-to-collateral ratio breaches the liquidation
// threshold can be closed.
func (k Keeper) Liquidate(ctx sdk.Context, liquidator, agent sdk.AccAddress) (debtCovered, collateralPaid math.Int, err error) {
	acct, found := k.GetCreditAccount(ctx, agent)
	if !found {
		return math.Int{}, math.Int{}, types.ErrNoCreditAccount
	}
	if err := k.accrueInterest(ctx, &acct); err != nil {
		return math.Int{}, math.Int{}, err
	}
	debt := acct.Debt()
	if debt.IsZero() {
		return math.Int{}, math.Int{}, types.ErrNoDebt
	}

	params := k.GetParams(ctx)
	healthy, hf, err := k.positionHealthy(acct, params)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if healthy {
		return math.Int{}, math.Int{}, types.ErrNotLiquidatable.Wrapf("health factor %s bps", hf)
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, liquidator, types.ModuleName, types.Coin(params.PaymentDenom, debt)); err != nil {
		return math.Int{}, math.Int{}, err
	}
	collateral := acct.Collateral
	if collateral.IsPositive() {
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, liquidator, types.Coin(params.PaymentDenom, collateral)); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	vault := k.GetVaultState(ctx)
	vault.TotalBorrowed = vault.TotalBorrowed.Sub(acct.Principal)
	vault.TotalDeposits = vault.TotalDeposits.Add(acct.InterestAccrued)
	if err := k.SetVaultState(ctx, vault); err != nil {
		return math.Int{}, math.Int{}, err
	}

	closed := acct
	closed.Principal = math.ZeroInt()
	closed.InterestAccrued = math.ZeroInt()
	closed.Collateral = math.ZeroInt()
	if err := k.SetCreditAccount(ctx, closed); err != nil {
		return math.Int{}, math.Int{}, err
	}

	k.metrics.LiquidationsTotal.Inc()
	k.metrics.TotalBorrowed.Set(float64(vault.TotalBorrowed.Int64()))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidation,
			sdk.NewAttribute(types.AttributeKeyLiquidator, liquidator.String()),
			sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
			sdk.NewAttribute(types.AttributeKeyDebtCovered, debt.String()),
			sdk.NewAttribute(types.AttributeKeyCollateral, collateral.String()),
			sdk.NewAttribute(types.AttributeKeyHealthFactor, hf.String()),
		),
	)
	k.Logger(ctx).Info("position liquidated",
		"liquidator", liquidator.String(), "agent", agent.String(),
		"debt", debt.String(), "collateral", collateral.String())
	return debt, collateral, nil
}

// positionHealthy reports whether the position's collateral-to-debt
// ratio, in basis points, is at or above the liquidation threshold.
// Zero collateral with outstanding debt is always unhealthy.
func (k Keeper) positionHealthy(acct types.CreditAccount, params types.Params) (bool, math.Int, error) {
	debt := acct.Debt()
	if debt.IsZero() {
		return true, math.ZeroInt(), nil
	}
	if acct.Collateral.IsZero() {
		return false, math.ZeroInt(), nil
	}
	hf, err := SafeMulDiv(acct.Collateral, math.NewInt(types.BpsDenominator), debt)
	if err != nil {
		return false, math.Int{}, err
	}
	return hf.GTE(math.NewIntFromUint64(uint64(params.LiquidationThresholdBps))), hf, nil
}
