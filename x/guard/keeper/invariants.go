package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/guard/types"
)

// RegisterInvariants registers the guard module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, "valid-bindings", ValidBindingsInvariant(k))
}

// AllInvariants runs all guard module invariants.
func AllInvariants(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		return ValidBindingsInvariant(k)(ctx)
	}
}

// ValidBindingsInvariant checks that every stored binding decodes to a
// well-formed model hash and that delegate entries carry attestation keys.
func ValidBindingsInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var broken bool
		var msg string
		k.IterateBindings(ctx, func(binding types.StrategyBinding) bool {
			if err := binding.Validate(); err != nil {
				broken = true
				msg = fmt.Sprintf("invalid binding for %s: %v", binding.Agent, err)
				return true
			}
			if binding.DelegateAddress != "" && len(binding.AttestationPubKey) == 0 {
				broken = true
				msg = fmt.Sprintf("binding for %s has a delegate but no attestation key", binding.Agent)
				return true
			}
			return false
		})
		if broken {
			return sdk.FormatInvariant(types.ModuleName, "valid-bindings", msg), true
		}
		return sdk.FormatInvariant(types.ModuleName, "valid-bindings", "all bindings well-formed"), false
	}
}
