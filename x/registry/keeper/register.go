package keeper

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/registry/types"
)

// Register self-registers an agent passport. The identity commitment must
// be derivable from the agent address and prove membership against the
// published root. Re-registration of an active passport is rejected; a
// deactivated passport stays deactivated (reactivation is an admin path).
func (k Keeper) Register(ctx context.Context, agent sdk.AccAddress, commitmentHex string, proof types.MembershipProof) error {
	if existing, err := k.GetPassport(ctx, agent); err == nil && existing.Active {
		return types.ErrAlreadyRegistered.Wrapf("agent %s", agent.String())
	} else if err == nil && !existing.Active {
		return types.ErrAgentNotActive.Wrapf("agent %s holds a deactivated passport", agent.String())
	}

	commitment, err := hex.DecodeString(commitmentHex)
	if err != nil || len(commitment) != 32 {
		return types.ErrInvalidCommitment.Wrap("identity commitment must be a 32-byte hex string")
	}

	derived := types.DeriveIdentityCommitment(agent)
	if subtle.ConstantTimeCompare(commitment, derived[:]) != 1 {
		return types.ErrInvalidCommitment.Wrapf("agent %s", agent.String())
	}

	root, err := k.GetMembershipRoot(ctx)
	if err != nil {
		return err
	}
	if !types.VerifyMembershipProof(root, derived, proof) {
		return types.ErrInvalidMembershipProof.Wrapf("agent %s", agent.String())
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	passport := types.Passport{
		Agent:              agent.String(),
		IdentityCommitment: commitmentHex,
		Reputation:         params.InitialReputation,
		RegisteredAt:       sdkCtx.BlockTime().Unix(),
		SettlementCount:    0,
		LifetimeVolume:     math.ZeroInt(),
		Active:             true,
	}
	if err := k.SetPassport(ctx, passport); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRegister,
			sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
			sdk.NewAttribute(types.AttributeKeyCommitment, commitmentHex),
			sdk.NewAttribute(types.AttributeKeyReputation, fmt.Sprintf("%d", params.InitialReputation)),
		),
	)
	return nil
}

// GetMembershipRoot returns the currently published membership root
func (k Keeper) GetMembershipRoot(ctx context.Context) ([]byte, error) {
	bz := k.getStore(ctx).Get(MembershipRootKey)
	if len(bz) != 32 {
		return nil, types.ErrInvalidRoot.Wrap("membership root not published")
	}
	return bz, nil
}

// SetMembershipRoot publishes a new membership root
func (k Keeper) SetMembershipRoot(ctx context.Context, root []byte) error {
	if len(root) != 32 {
		return types.ErrInvalidRoot
	}
	k.getStore(ctx).Set(MembershipRootKey, root)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMembershipRoot,
			sdk.NewAttribute(types.AttributeKeyRoot, hex.EncodeToString(root)),
		),
	)
	return nil
}
