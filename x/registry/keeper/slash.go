package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/registry/types"
)

// Slash subtracts a penalty from an agent's reputation, flooring at zero.
// Reaching zero auto-deactivates the passport. The caller must be either
// the module authority or an allow-listed caller. The human-readable
// reason travels on the emitted event for the audit trail.
func (k Keeper) Slash(ctx context.Context, caller sdk.AccAddress, agent sdk.AccAddress, penalty uint32, reason string) error {
	if caller.String() != k.authority && !k.IsWhitelistedCaller(ctx, caller) {
		return types.ErrNotAuthorizedCaller.Wrapf("caller %s", caller.String())
	}
	if penalty == 0 {
		return types.ErrInvalidPenalty
	}

	passport, err := k.GetPassport(ctx, agent)
	if err != nil {
		return err
	}

	if penalty >= passport.Reputation {
		passport.Reputation = 0
		passport.Active = false
	} else {
		passport.Reputation -= penalty
	}

	if err := k.SetPassport(ctx, *passport); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSlash,
			sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
			sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
			sdk.NewAttribute(types.AttributeKeyPenalty, fmt.Sprintf("%d", penalty)),
			sdk.NewAttribute(types.AttributeKeyReputation, fmt.Sprintf("%d", passport.Reputation)),
			sdk.NewAttribute(types.AttributeKeyReason, reason),
		),
	)

	if !passport.Active {
		k.Logger(ctx).Info("agent auto-deactivated after slash", "agent", agent.String(), "reason", reason)
	}
	return nil
}

// Deactivate flips a passport to inactive without touching reputation.
func (k Keeper) Deactivate(ctx context.Context, agent sdk.AccAddress) error {
	passport, err := k.GetPassport(ctx, agent)
	if err != nil {
		return err
	}
	if !passport.Active {
		return types.ErrAgentNotActive.Wrapf("agent %s", agent.String())
	}
	passport.Active = false
	if err := k.SetPassport(ctx, *passport); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeactivate,
			sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
		),
	)
	return nil
}

// Reactivate flips an inactive passport back to active. A passport slashed
// to zero reputation cannot be reactivated without first restoring score,
// preserving the zero-reputation-inactive invariant.
func (k Keeper) Reactivate(ctx context.Context, agent sdk.AccAddress) error {
	passport, err := k.GetPassport(ctx, agent)
	if err != nil {
		return err
	}
	if passport.Active {
		return types.ErrAlreadyActive.Wrapf("agent %s", agent.String())
	}
	if passport.Reputation == 0 {
		params, perr := k.GetParams(ctx)
		if perr != nil {
			return perr
		}
		passport.Reputation = params.InitialReputation
	}
	passport.Active = true
	if err := k.SetPassport(ctx, *passport); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeReactivate,
			sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
		),
	)
	return nil
}
