package types

import (
	"context"
)

// MsgServer is the server API for the registry message service.
type MsgServer interface {
	Register(context.Context, *MsgRegister) (*MsgRegisterResponse, error)
	Slash(context.Context, *MsgSlash) (*MsgSlashResponse, error)
	UpdateMembershipRoot(context.Context, *MsgUpdateMembershipRoot) (*MsgUpdateMembershipRootResponse, error)
	WhitelistCaller(context.Context, *MsgWhitelistCaller) (*MsgWhitelistCallerResponse, error)
	RemoveWhitelistedCaller(context.Context, *MsgRemoveWhitelistedCaller) (*MsgRemoveWhitelistedCallerResponse, error)
	Deactivate(context.Context, *MsgDeactivate) (*MsgDeactivateResponse, error)
	Reactivate(context.Context, *MsgReactivate) (*MsgReactivateResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// Message responses
type (
	MsgRegisterResponse                struct{}
	MsgSlashResponse                   struct{}
	MsgUpdateMembershipRootResponse    struct{}
	MsgWhitelistCallerResponse         struct{}
	MsgRemoveWhitelistedCallerResponse struct{}
	MsgDeactivateResponse              struct{}
	MsgReactivateResponse              struct{}
	MsgUpdateParamsResponse            struct{}
)
