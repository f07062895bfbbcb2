package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/settlement/types"
)

// RegisterInvariants registers the settlement module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, "non-custodial", NonCustodialInvariant(k))
	ir.RegisterRoute(types.ModuleName, "valid-listings", ValidListingsInvariant(k))
}

// AllInvariants runs all settlement module invariants.
func AllInvariants(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if msg, broken := NonCustodialInvariant(k)(ctx); broken {
			return msg, broken
		}
		return ValidListingsInvariant(k)(ctx)
	}
}

// NonCustodialInvariant checks the module account never retains payment
// funds between transactions: it is a conduit for the payment denom and
// a custodian only for asset inventory.
func NonCustodialInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params := k.GetParams(ctx)
		balance := k.bankKeeper.GetBalance(ctx, k.ModuleAddress(), params.PaymentDenom)
		if !balance.Amount.IsZero() {
			return sdk.FormatInvariant(types.ModuleName, "non-custodial",
				fmt.Sprintf("module account retains %s of %s", balance.Amount, params.PaymentDenom)), true
		}
		return sdk.FormatInvariant(types.ModuleName, "non-custodial", "module retains no payment funds"), false
	}
}

// ValidListingsInvariant checks every stored listing is well-formed.
func ValidListingsInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var broken bool
		var msg string
		k.IterateListings(ctx, func(listing types.AssetListing) bool {
			if err := listing.Validate(); err != nil {
				broken = true
				msg = fmt.Sprintf("invalid listing %s: %v", listing.Denom, err)
				return true
			}
			return false
		})
		if broken {
			return sdk.FormatInvariant(types.ModuleName, "valid-listings", msg), true
		}
		return sdk.FormatInvariant(types.ModuleName, "valid-listings", "all listings well-formed"), false
	}
}
