package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/keel-chain/keel/x/shared/keeper"

	"github.com/keel-chain/keel/x/guard/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the guard MsgServer.
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (ms msgServer) RegisterStrategy(goCtx context.Context, msg *types.MsgRegisterStrategy) (*types.MsgRegisterStrategyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	agent, err := sdk.AccAddressFromBech32(msg.Agent)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	if err := ms.Keeper.RegisterStrategy(ctx, agent, msg.ModelHash); err != nil {
		return nil, err
	}
	return &types.MsgRegisterStrategyResponse{}, nil
}

func (ms msgServer) RegisterDelegate(goCtx context.Context, msg *types.MsgRegisterDelegate) (*types.MsgRegisterDelegateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	agent, err := sdk.AccAddressFromBech32(msg.Agent)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	delegate, err := sdk.AccAddressFromBech32(msg.Delegate)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("delegate: %s", err)
	}
	if err := ms.Keeper.RegisterDelegate(ctx, agent, delegate, msg.AttestationPubKey); err != nil {
		return nil, err
	}
	return &types.MsgRegisterDelegateResponse{}, nil
}

func (ms msgServer) VerifyInference(goCtx context.Context, msg *types.MsgVerifyInference) (*types.MsgVerifyInferenceResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	agent, err := sdk.AccAddressFromBech32(msg.Agent)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	binding, credit, err := ms.Keeper.VerifyInference(ctx, agent, msg.Proof, msg.PublicValues)
	if err != nil {
		return nil, err
	}
	return &types.MsgVerifyInferenceResponse{
		InferenceCount:    binding.InferenceCount,
		IntelligenceScore: binding.IntelligenceScore,
		Credit:            credit,
	}, nil
}

func (ms msgServer) ExecuteVerifiedAction(goCtx context.Context, msg *types.MsgExecuteVerifiedAction) (*types.MsgExecuteVerifiedActionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("caller: %s", err)
	}
	agent, err := sdk.AccAddressFromBech32(msg.Agent)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	if err := ms.Keeper.ExecuteVerifiedAction(ctx, caller, agent, msg.ActionPayload, msg.Nonce, msg.AttestationSig, msg.Proof, msg.PublicValues); err != nil {
		return nil, err
	}
	return &types.MsgExecuteVerifiedActionResponse{}, nil
}

func (ms msgServer) RegisterVerifyingKey(goCtx context.Context, msg *types.MsgRegisterVerifyingKey) (*types.MsgRegisterVerifyingKeyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.SetVerifyingKey(ctx, msg.ProgramID, msg.KeyData); err != nil {
		return nil, err
	}
	return &types.MsgRegisterVerifyingKeyResponse{}, nil
}

func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
