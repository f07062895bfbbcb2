package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the guard module message handling interface.
type MsgServer interface {
	RegisterStrategy(context.Context, *MsgRegisterStrategy) (*MsgRegisterStrategyResponse, error)
	RegisterDelegate(context.Context, *MsgRegisterDelegate) (*MsgRegisterDelegateResponse, error)
	VerifyInference(context.Context, *MsgVerifyInference) (*MsgVerifyInferenceResponse, error)
	ExecuteVerifiedAction(context.Context, *MsgExecuteVerifiedAction) (*MsgExecuteVerifiedActionResponse, error)
	RegisterVerifyingKey(context.Context, *MsgRegisterVerifyingKey) (*MsgRegisterVerifyingKeyResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

type MsgRegisterStrategyResponse struct{}

type MsgRegisterDelegateResponse struct{}

type MsgVerifyInferenceResponse struct {
	InferenceCount    uint64   `json:"inference_count"`
	IntelligenceScore uint64   `json:"intelligence_score"`
	Credit            math.Int `json:"credit"`
}

type MsgExecuteVerifiedActionResponse struct{}

type MsgRegisterVerifyingKeyResponse struct{}

type MsgUpdateParamsResponse struct{}
