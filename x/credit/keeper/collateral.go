package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/credit/types"
)

// StakeCollateral locks payment-denom collateral in the module account
// against the agent's credit line.
func (k Keeper) StakeCollateral(ctx sdk.Context, agent sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount
	}
	acct, found := k.GetCreditAccount(ctx, agent)
	if !found {
		acct = types.NewCreditAccount(agent, ctx.BlockTime().Unix())
	} else if err := k.accrueInterest(ctx, &acct); err != nil {
		return err
	}

	params := k.GetParams(ctx)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, agent, types.ModuleName, types.Coin(params.PaymentDenom, amount)); err != nil {
		return err
	}

	acct.Collateral = acct.Collateral.Add(amount)
	if err := k.SetCreditAccount(ctx, acct); err != nil {
		return err
	}

	k.metrics.CollateralStaked.Add(float64(amount.Int64()))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCollateralStake,
			sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyCollateral, acct.Collateral.String()),
		),
	)
	return nil
}

// UnstakeCollateral releases collateral that is not needed to back
// outstanding debt at the agent's current leverage tier.
func (k Keeper) UnstakeCollateral(ctx sdk.Context, agent sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount
	}
	acct, found := k.GetCreditAccount(ctx, agent)
	if !found {
		return types.ErrNoCreditAccount
	}
	if err := k.accrueInterest(ctx, &acct); err != nil {
		return err
	}
	if acct.Collateral.LT(amount) {
		return types.ErrInsufficientCollateral.Wrapf("staked %s, requested %s", acct.Collateral, amount)
	}

	remaining := acct.Collateral.Sub(amount)
	if !acct.Debt().IsZero() {
		params := k.GetParams(ctx)
		reputation, _ := k.registryKeeper.ReputationOf(ctx, agent)
		leverage := params.LeverageFor(reputation)
		if leverage == 0 {
			return types.ErrCollateralLocked.Wrap("reputation tier no longer supports leverage")
		}
		// Required collateral backing the debt at the current tier,
		// rounded up so a partial unit still counts.
		lev := math.NewIntFromUint64(uint64(leverage))
		required := acct.Debt().Add(lev).SubRaw(1).Quo(lev)
		if remaining.LT(required) {
			return types.ErrCollateralLocked.Wrapf(
				"debt %s requires at least %s collateral at %dx leverage",
				acct.Debt(), required, leverage)
		}
	}

	acct.Collateral = remaining
	if err := k.SetCreditAccount(ctx, acct); err != nil {
		return err
	}

	params := k.GetParams(ctx)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, agent, types.Coin(params.PaymentDenom, amount)); err != nil {
		return err
	}

	k.metrics.CollateralUnstaked.Add(float64(amount.Int64()))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCollateralUnstake,
			sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyCollateral, acct.Collateral.String()),
		),
	)
	return nil
}
