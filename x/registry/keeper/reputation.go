package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/registry/types"
)

// IsWhitelistedCaller reports whether a caller is allow-listed for
// reputation-mutating operations.
func (k Keeper) IsWhitelistedCaller(ctx context.Context, caller sdk.AccAddress) bool {
	return k.getStore(ctx).Has(WhitelistedCallerKey(caller))
}

// SetWhitelistedCaller adds a caller to the allow list.
func (k Keeper) SetWhitelistedCaller(ctx context.Context, caller sdk.AccAddress) {
	k.getStore(ctx).Set(WhitelistedCallerKey(caller), []byte{1})
}

// RemoveWhitelistedCaller drops a caller from the allow list.
func (k Keeper) RemoveWhitelistedCaller(ctx context.Context, caller sdk.AccAddress) {
	k.getStore(ctx).Delete(WhitelistedCallerKey(caller))
}

// GetWhitelistedCallers returns every allow-listed caller address.
func (k Keeper) GetWhitelistedCallers(ctx context.Context) []string {
	store := k.getStore(ctx)
	iterator := store.Iterator(WhitelistedCallerKeyPrefix, storetypes.PrefixEndBytes(WhitelistedCallerKeyPrefix))
	defer iterator.Close()

	var callers []string
	for ; iterator.Valid(); iterator.Next() {
		addr := sdk.AccAddress(iterator.Key()[len(WhitelistedCallerKeyPrefix):])
		callers = append(callers, addr.String())
	}
	return callers
}

// RecordSettlement credits an agent with settled volume: settlement count
// and lifetime volume grow, reputation is boosted by volume/VolumePerPoint
// saturating at MaxReputation, and the compliance window is extended.
// Only allow-listed callers (the settlement router's module account) may
// record settlements.
func (k Keeper) RecordSettlement(ctx context.Context, caller, agent sdk.AccAddress, volume math.Int) error {
	if !k.IsWhitelistedCaller(ctx, caller) {
		return types.ErrNotAuthorizedCaller.Wrapf("caller %s", caller.String())
	}
	if volume.IsNil() || !volume.IsPositive() {
		return types.ErrInvalidVolume
	}

	passport, err := k.GetPassport(ctx, agent)
	if err != nil {
		return err
	}
	if !passport.Active {
		return types.ErrAgentNotActive.Wrapf("agent %s", agent.String())
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	passport.SettlementCount++
	passport.LifetimeVolume = passport.LifetimeVolume.Add(volume)
	passport.Reputation = boostReputation(passport.Reputation, volume, params)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	passport.VerifiedUntil = sdkCtx.BlockTime().Unix() + params.VerifiedWindowSeconds

	if err := k.SetPassport(ctx, *passport); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSettlementRecord,
			sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
			sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
			sdk.NewAttribute(types.AttributeKeyVolume, volume.String()),
			sdk.NewAttribute(types.AttributeKeyCount, fmt.Sprintf("%d", passport.SettlementCount)),
			sdk.NewAttribute(types.AttributeKeyReputation, fmt.Sprintf("%d", passport.Reputation)),
			sdk.NewAttribute(types.AttributeKeyVerifiedTil, fmt.Sprintf("%d", passport.VerifiedUntil)),
		),
	)
	return nil
}

// boostReputation applies the volume-derived boost, saturating at the
// configured maximum. The boost itself is floor(volume / VolumePerPoint).
func boostReputation(current uint32, volume math.Int, params types.Params) uint32 {
	boost := volume.Quo(params.VolumePerPoint)
	max := math.NewIntFromUint64(uint64(params.MaxReputation))

	total := math.NewIntFromUint64(uint64(current)).Add(boost)
	if total.GT(max) {
		return params.MaxReputation
	}
	return uint32(total.Uint64())
}
