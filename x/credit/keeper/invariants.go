package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/keel-chain/keel/x/credit/types"
)

// RegisterInvariants registers the credit module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "vault-solvency", VaultSolvencyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "nonnegative-balances", NonNegativeBalancesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-balance", ModuleBalanceInvariant(k))
}

// AllInvariants runs all credit module invariants.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if msg, broken := VaultSolvencyInvariant(k)(ctx); broken {
			return msg, broken
		}
		if msg, broken := NonNegativeBalancesInvariant(k)(ctx); broken {
			return msg, broken
		}
		return ModuleBalanceInvariant(k)(ctx)
	}
}

// VaultSolvencyInvariant checks that aggregate borrows never exceed
// deposits and that per-account principal sums to TotalBorrowed.
func VaultSolvencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		vault := k.GetVaultState(ctx)
		if vault.TotalBorrowed.GT(vault.TotalDeposits) {
			return sdk.FormatInvariant(types.ModuleName, "vault-solvency",
				fmt.Sprintf("total borrowed %s exceeds total deposits %s",
					vault.TotalBorrowed, vault.TotalDeposits)), true
		}
		principalSum := math.ZeroInt()
		k.IterateCreditAccounts(ctx, func(acct types.CreditAccount) bool {
			principalSum = principalSum.Add(acct.Principal)
			return false
		})
		if !principalSum.Equal(vault.TotalBorrowed) {
			return sdk.FormatInvariant(types.ModuleName, "vault-solvency",
				fmt.Sprintf("account principal sum %s does not match total borrowed %s",
					principalSum, vault.TotalBorrowed)), true
		}
		return sdk.FormatInvariant(types.ModuleName, "vault-solvency", "vault is solvent"), false
	}
}

// NonNegativeBalancesInvariant checks every stored amount is non-negative.
func NonNegativeBalancesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var broken bool
		var msg string
		k.IterateCreditAccounts(ctx, func(acct types.CreditAccount) bool {
			if acct.Principal.IsNegative() || acct.InterestAccrued.IsNegative() || acct.Collateral.IsNegative() {
				broken = true
				msg = fmt.Sprintf("account %s holds a negative balance", acct.Agent)
				return true
			}
			return false
		})
		if broken {
			return sdk.FormatInvariant(types.ModuleName, "nonnegative-balances", msg), true
		}
		k.IterateShares(ctx, func(lender sdk.AccAddress, shares math.Int) bool {
			if !shares.IsPositive() {
				broken = true
				msg = fmt.Sprintf("lender %s holds non-positive shares %s", lender, shares)
				return true
			}
			return false
		})
		if broken {
			return sdk.FormatInvariant(types.ModuleName, "nonnegative-balances", msg), true
		}
		return sdk.FormatInvariant(types.ModuleName, "nonnegative-balances", "all balances non-negative"), false
	}
}

// ModuleBalanceInvariant checks the module account holds at least the
// idle vault liquidity plus all staked collateral.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params := k.GetParams(ctx)
		vault := k.GetVaultState(ctx)

		collateralSum := math.ZeroInt()
		k.IterateCreditAccounts(ctx, func(acct types.CreditAccount) bool {
			collateralSum = collateralSum.Add(acct.Collateral)
			return false
		})
		required := vault.AvailableLiquidity().Add(collateralSum)

		moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
		balance := k.bankKeeper.GetBalance(ctx, moduleAddr, params.PaymentDenom)
		if balance.Amount.LT(required) {
			return sdk.FormatInvariant(types.ModuleName, "module-balance",
				fmt.Sprintf("module holds %s but owes %s", balance.Amount, required)), true
		}
		return sdk.FormatInvariant(types.ModuleName, "module-balance", "module account covers obligations"), false
	}
}
