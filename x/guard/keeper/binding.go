package keeper

import (
	"encoding/json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/guard/types"
)

// GetBinding returns the agent's strategy binding and whether it exists.
func (k *Keeper) GetBinding(ctx sdk.Context, agent sdk.AccAddress) (types.StrategyBinding, bool) {
	bz := k.getStore(ctx).Get(BindingKey(agent))
	if bz == nil {
		return types.StrategyBinding{}, false
	}
	var binding types.StrategyBinding
	if err := json.Unmarshal(bz, &binding); err != nil {
		k.Logger(ctx).Error("corrupt strategy binding", "agent", agent.String(), "error", err)
		return types.StrategyBinding{}, false
	}
	return binding, true
}

// SetBinding persists a strategy binding.
func (k *Keeper) SetBinding(ctx sdk.Context, binding types.StrategyBinding) error {
	agent, err := sdk.AccAddressFromBech32(binding.Agent)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	bz, err := json.Marshal(binding)
	if err != nil {
		return types.ErrMarshalFailed.Wrapf("strategy binding: %s", err)
	}
	k.getStore(ctx).Set(BindingKey(agent), bz)
	return nil
}

// IterateBindings calls cb for each stored binding until cb returns true.
func (k *Keeper) IterateBindings(ctx sdk.Context, cb func(types.StrategyBinding) bool) {
	store := k.getStore(ctx)
	iterator := store.Iterator(BindingKeyPrefix, storetypes.PrefixEndBytes(BindingKeyPrefix))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var binding types.StrategyBinding
		if err := json.Unmarshal(iterator.Value(), &binding); err != nil {
			continue
		}
		if cb(binding) {
			break
		}
	}
}

// GetAllBindings returns every stored strategy binding.
func (k *Keeper) GetAllBindings(ctx sdk.Context) []types.StrategyBinding {
	var bindings []types.StrategyBinding
	k.IterateBindings(ctx, func(binding types.StrategyBinding) bool {
		bindings = append(bindings, binding)
		return false
	})
	return bindings
}

// RegisterStrategy binds the agent to a model hash. Rebinding to a new
// hash is allowed and preserves the accumulated counters.
func (k *Keeper) RegisterStrategy(ctx sdk.Context, agent sdk.AccAddress, modelHash string) error {
	if err := types.ValidateModelHash(modelHash); err != nil {
		return err
	}
	binding, found := k.GetBinding(ctx, agent)
	if !found {
		binding = types.NewStrategyBinding(agent, modelHash)
	} else {
		binding.ModelHash = modelHash
	}
	if err := k.SetBinding(ctx, binding); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeStrategyRegistered,
			sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
			sdk.NewAttribute(types.AttributeKeyModelHash, modelHash),
		),
	)
	k.Logger(ctx).Info("strategy registered", "agent", agent.String(), "model_hash", modelHash)
	return nil
}

// RegisterDelegate sets the agent's custody delegate and the attestation
// key strict mode verifies signatures against. Requires an existing
// strategy binding.
func (k *Keeper) RegisterDelegate(ctx sdk.Context, agent, delegate sdk.AccAddress, attestationPubKey []byte) error {
	binding, found := k.GetBinding(ctx, agent)
	if !found {
		return types.ErrBindingNotFound.Wrapf("agent %s", agent)
	}
	if len(attestationPubKey) == 0 {
		return types.ErrNoAttestationKey.Wrap("attestation public key required")
	}
	binding.DelegateAddress = delegate.String()
	binding.AttestationPubKey = attestationPubKey
	if err := k.SetBinding(ctx, binding); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDelegateRegistered,
			sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
			sdk.NewAttribute(types.AttributeKeyDelegate, delegate.String()),
		),
	)
	return nil
}
