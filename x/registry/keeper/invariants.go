package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/registry/types"
)

// RegisterInvariants registers all registry invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reputation-bounds", ReputationBoundsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "zero-reputation-inactive", ZeroReputationInactiveInvariant(k))
}

// AllInvariants runs all invariants of the registry module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ReputationBoundsInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ZeroReputationInactiveInvariant(k)(ctx)
	}
}

// ReputationBoundsInvariant checks that every passport's reputation lies
// within [0, MaxReputation].
func ReputationBoundsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reputation-bounds", err.Error()), true
		}

		_ = k.IteratePassports(ctx, func(passport types.Passport) (bool, error) {
			if passport.Reputation > params.MaxReputation {
				count++
				msg += fmt.Sprintf("agent %s: reputation %d exceeds maximum %d\n",
					passport.Agent, passport.Reputation, params.MaxReputation)
			}
			return false, nil
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "reputation-bounds",
			fmt.Sprintf("found %d passports above the reputation cap\n%s", count, msg),
		), broken
	}
}

// ZeroReputationInactiveInvariant checks that no passport with zero
// reputation remains active.
func ZeroReputationInactiveInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		_ = k.IteratePassports(ctx, func(passport types.Passport) (bool, error) {
			if passport.Reputation == 0 && passport.Active {
				count++
				msg += fmt.Sprintf("agent %s: active with zero reputation\n", passport.Agent)
			}
			return false, nil
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "zero-reputation-inactive",
			fmt.Sprintf("found %d active passports with zero reputation\n%s", count, msg),
		), broken
	}
}
