package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/settlement/types"
)

// IsPaused reports whether the settlement circuit breaker is engaged.
func (k *Keeper) IsPaused(ctx sdk.Context) bool {
	return k.getStore(ctx).Has(PausedKey)
}

// SetPaused toggles the circuit breaker.
func (k *Keeper) SetPaused(ctx sdk.Context, paused bool) {
	store := k.getStore(ctx)
	if paused {
		store.Set(PausedKey, []byte{1})
		ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypePaused))
		k.Logger(ctx).Info("settlement paused")
		return
	}
	store.Delete(PausedKey)
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeUnpaused))
	k.Logger(ctx).Info("settlement unpaused")
}
