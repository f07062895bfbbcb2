package keeper

import (
	"context"
	"encoding/hex"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/keel-chain/keel/x/shared/keeper"
	"github.com/keel-chain/keel/x/registry/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the registry MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Register handles agent self-registration
func (ms msgServer) Register(goCtx context.Context, msg *types.MsgRegister) (*types.MsgRegisterResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Register: validate: %w", err)
	}

	agent, err := sdk.AccAddressFromBech32(msg.Agent)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("agent: %v", err)
	}

	if err := ms.Keeper.Register(goCtx, agent, msg.IdentityCommitment, msg.Proof); err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}
	return &types.MsgRegisterResponse{}, nil
}

// Slash handles reputation slashing by the authority or an allow-listed caller
func (ms msgServer) Slash(goCtx context.Context, msg *types.MsgSlash) (*types.MsgSlashResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Slash: validate: %w", err)
	}

	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("caller: %v", err)
	}
	agent, err := sdk.AccAddressFromBech32(msg.Agent)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("agent: %v", err)
	}

	if err := ms.Keeper.Slash(goCtx, caller, agent, msg.Penalty, msg.Reason); err != nil {
		return nil, fmt.Errorf("Slash: %w", err)
	}
	return &types.MsgSlashResponse{}, nil
}

// UpdateMembershipRoot handles authority updates to the membership root
func (ms msgServer) UpdateMembershipRoot(goCtx context.Context, msg *types.MsgUpdateMembershipRoot) (*types.MsgUpdateMembershipRootResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateMembershipRoot: validate: %w", err)
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	root, err := hex.DecodeString(msg.Root)
	if err != nil {
		return nil, types.ErrInvalidRoot
	}
	if err := ms.Keeper.SetMembershipRoot(goCtx, root); err != nil {
		return nil, fmt.Errorf("UpdateMembershipRoot: %w", err)
	}
	return &types.MsgUpdateMembershipRootResponse{}, nil
}

// WhitelistCaller handles authority additions to the caller allow list
func (ms msgServer) WhitelistCaller(goCtx context.Context, msg *types.MsgWhitelistCaller) (*types.MsgWhitelistCallerResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WhitelistCaller: validate: %w", err)
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("caller: %v", err)
	}
	ms.Keeper.SetWhitelistedCaller(goCtx, caller)

	sdk.UnwrapSDKContext(goCtx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCallerWhitelisted,
			sdk.NewAttribute(types.AttributeKeyCaller, msg.Caller),
		),
	)
	return &types.MsgWhitelistCallerResponse{}, nil
}

// RemoveWhitelistedCaller handles authority removals from the caller allow list
func (ms msgServer) RemoveWhitelistedCaller(goCtx context.Context, msg *types.MsgRemoveWhitelistedCaller) (*types.MsgRemoveWhitelistedCallerResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveWhitelistedCaller: validate: %w", err)
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("caller: %v", err)
	}
	ms.Keeper.RemoveWhitelistedCaller(goCtx, caller)

	sdk.UnwrapSDKContext(goCtx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCallerRemoved,
			sdk.NewAttribute(types.AttributeKeyCaller, msg.Caller),
		),
	)
	return &types.MsgRemoveWhitelistedCallerResponse{}, nil
}

// Deactivate handles authority deactivation of a passport
func (ms msgServer) Deactivate(goCtx context.Context, msg *types.MsgDeactivate) (*types.MsgDeactivateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Deactivate: validate: %w", err)
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	agent, err := sdk.AccAddressFromBech32(msg.Agent)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("agent: %v", err)
	}
	if err := ms.Keeper.Deactivate(goCtx, agent); err != nil {
		return nil, fmt.Errorf("Deactivate: %w", err)
	}
	return &types.MsgDeactivateResponse{}, nil
}

// Reactivate handles authority reactivation of a passport
func (ms msgServer) Reactivate(goCtx context.Context, msg *types.MsgReactivate) (*types.MsgReactivateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Reactivate: validate: %w", err)
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	agent, err := sdk.AccAddressFromBech32(msg.Agent)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("agent: %v", err)
	}
	if err := ms.Keeper.Reactivate(goCtx, agent); err != nil {
		return nil, fmt.Errorf("Reactivate: %w", err)
	}
	return &types.MsgReactivateResponse{}, nil
}

// UpdateParams handles authority parameter updates
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateParams: validate: %w", err)
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.Keeper.SetParams(goCtx, msg.Params); err != nil {
		return nil, fmt.Errorf("UpdateParams: %w", err)
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
