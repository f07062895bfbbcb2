package keeper

import (
	"encoding/json"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/credit/types"
)

// GetVaultState returns the aggregate vault accounting, zeroed if unset.
func (k Keeper) GetVaultState(ctx sdk.Context) types.VaultState {
	store := k.getStore(ctx)
	bz := store.Get(VaultStateKey)
	if bz == nil {
		return types.NewVaultState()
	}
	var vault types.VaultState
	if err := json.Unmarshal(bz, &vault); err != nil {
		k.Logger(ctx).Error("corrupt vault state", "error", err)
		return types.NewVaultState()
	}
	return vault
}

// SetVaultState persists the vault aggregates.
func (k Keeper) SetVaultState(ctx sdk.Context, vault types.VaultState) error {
	bz, err := json.Marshal(vault)
	if err != nil {
		return types.ErrMarshalFailed.Wrapf("vault state: %s", err)
	}
	k.getStore(ctx).Set(VaultStateKey, bz)
	return nil
}

// GetShares returns the lender's vault share balance.
func (k Keeper) GetShares(ctx sdk.Context, lender sdk.AccAddress) math.Int {
	bz := k.getStore(ctx).Get(ShareKey(lender))
	if bz == nil {
		return math.ZeroInt()
	}
	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		k.Logger(ctx).Error("corrupt share balance", "lender", lender.String(), "error", err)
		return math.ZeroInt()
	}
	return shares
}

func (k Keeper) setShares(ctx sdk.Context, lender sdk.AccAddress, shares math.Int) error {
	store := k.getStore(ctx)
	if shares.IsZero() {
		store.Delete(ShareKey(lender))
		return nil
	}
	bz, err := shares.Marshal()
	if err != nil {
		return types.ErrMarshalFailed.Wrapf("share balance: %s", err)
	}
	store.Set(ShareKey(lender), bz)
	return nil
}

// IterateShares calls cb for each lender share balance until cb returns true.
func (k Keeper) IterateShares(ctx sdk.Context, cb func(lender sdk.AccAddress, shares math.Int) bool) {
	store := k.getStore(ctx)
	iterator := store.Iterator(ShareKeyPrefix, storetypes.PrefixEndBytes(ShareKeyPrefix))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		lender := sdk.AccAddress(iterator.Key()[len(ShareKeyPrefix):])
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			continue
		}
		if cb(lender, shares) {
			break
		}
	}
}

// Deposit supplies payment-denom liquidity to the vault and mints shares
// proportional to the current deposit base. The first deposit mints
// shares one-to-one.
func (k Keeper) Deposit(ctx sdk.Context, lender sdk.AccAddress, amount math.Int) (math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrZeroAmount
	}
	params := k.GetParams(ctx)
	vault := k.GetVaultState(ctx)

	var minted math.Int
	if vault.TotalShares.IsZero() {
		minted = amount
	} else {
		// shares = amount * totalShares / totalDeposits
		var err error
		minted, err = SafeMulDiv(amount, vault.TotalShares, vault.TotalDeposits)
		if err != nil {
			return math.Int{}, err
		}
		if minted.IsZero() {
			return math.Int{}, types.ErrZeroAmount.Wrap("deposit too small to mint shares")
		}
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, lender, types.ModuleName, types.Coin(params.PaymentDenom, amount)); err != nil {
		return math.Int{}, err
	}

	vault.TotalShares = vault.TotalShares.Add(minted)
	vault.TotalDeposits = vault.TotalDeposits.Add(amount)
	if err := k.SetVaultState(ctx, vault); err != nil {
		return math.Int{}, err
	}
	if err := k.setShares(ctx, lender, k.GetShares(ctx, lender).Add(minted)); err != nil {
		return math.Int{}, err
	}

	k.metrics.VaultDeposits.Inc()
	k.metrics.VaultTotalDeposits.Set(float64(vault.TotalDeposits.Int64()))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeVaultDeposit,
			sdk.NewAttribute(types.AttributeKeyLender, lender.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyShares, minted.String()),
		),
	)
	k.Logger(ctx).Info("vault deposit", "lender", lender.String(), "amount", amount.String(), "shares", minted.String())
	return minted, nil
}

// Withdraw burns shares and pays out the proportional slice of the
// deposit base. Fails when the vault's idle liquidity cannot cover the
// payout because it is lent out.
func (k Keeper) Withdraw(ctx sdk.Context, lender sdk.AccAddress, shares math.Int) (math.Int, error) {
	if shares.IsNil() || !shares.IsPositive() {
		return math.Int{}, types.ErrZeroAmount.Wrap("shares must be positive")
	}
	held := k.GetShares(ctx, lender)
	if held.LT(shares) {
		return math.Int{}, types.ErrInsufficientShares.Wrapf("have %s, want %s", held, shares)
	}
	vault := k.GetVaultState(ctx)
	if vault.TotalShares.IsZero() {
		return math.Int{}, types.ErrVaultEmpty
	}

	// amountOut = shares * totalDeposits / totalShares
	amountOut, err := SafeMulDiv(shares, vault.TotalDeposits, vault.TotalShares)
	if err != nil {
		return math.Int{}, err
	}
	if amountOut.GT(vault.AvailableLiquidity()) {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrapf(
			"available %s, requested %s", vault.AvailableLiquidity(), amountOut)
	}

	vault.TotalShares = vault.TotalShares.Sub(shares)
	vault.TotalDeposits = vault.TotalDeposits.Sub(amountOut)
	if err := k.SetVaultState(ctx, vault); err != nil {
		return math.Int{}, err
	}
	if err := k.setShares(ctx, lender, held.Sub(shares)); err != nil {
		return math.Int{}, err
	}

	params := k.GetParams(ctx)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, lender, types.Coin(params.PaymentDenom, amountOut)); err != nil {
		return math.Int{}, err
	}

	k.metrics.VaultWithdrawals.Inc()
	k.metrics.VaultTotalDeposits.Set(float64(vault.TotalDeposits.Int64()))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeVaultWithdraw,
			sdk.NewAttribute(types.AttributeKeyLender, lender.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amountOut.String()),
		),
	)
	k.Logger(ctx).Info("vault withdrawal", "lender", lender.String(), "shares", shares.String(), "amount", amountOut.String())
	return amountOut, nil
}
