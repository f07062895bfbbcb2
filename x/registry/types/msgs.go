package types

import (
	"encoding/hex"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgRegister               = "register"
	TypeMsgSlash                  = "slash"
	TypeMsgUpdateMembershipRoot   = "update_membership_root"
	TypeMsgWhitelistCaller        = "whitelist_caller"
	TypeMsgRemoveWhitelistedCaller = "remove_whitelisted_caller"
	TypeMsgDeactivate             = "deactivate"
	TypeMsgReactivate             = "reactivate"
	TypeMsgUpdateParams           = "update_params"
)

var (
	_ sdk.Msg = &MsgRegister{}
	_ sdk.Msg = &MsgSlash{}
	_ sdk.Msg = &MsgUpdateMembershipRoot{}
	_ sdk.Msg = &MsgWhitelistCaller{}
	_ sdk.Msg = &MsgRemoveWhitelistedCaller{}
	_ sdk.Msg = &MsgDeactivate{}
	_ sdk.Msg = &MsgReactivate{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgRegister self-registers an agent passport against the published
// membership root.
type MsgRegister struct {
	Agent              string          `json:"agent"`
	IdentityCommitment string          `json:"identity_commitment"` // hex, 32 bytes
	Proof              MembershipProof `json:"proof"`
}

func (msg *MsgRegister) Reset()         { *msg = MsgRegister{} }
func (msg *MsgRegister) String() string { return fmt.Sprintf("MsgRegister{%s}", msg.Agent) }
func (*MsgRegister) ProtoMessage()      {}

// ValidateBasic performs stateless validation of the registration message.
func (msg *MsgRegister) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Agent); err != nil {
		return ErrInvalidAddress.Wrapf("agent: %v", err)
	}
	commitment, err := hex.DecodeString(msg.IdentityCommitment)
	if err != nil || len(commitment) != 32 {
		return ErrInvalidCommitment.Wrap("identity commitment must be a 32-byte hex string")
	}
	return msg.Proof.Validate()
}

// GetSigners returns the expected signers for MsgRegister.
func (msg *MsgRegister) GetSigners() []sdk.AccAddress {
	agent, _ := sdk.AccAddressFromBech32(msg.Agent)
	return []sdk.AccAddress{agent}
}

// MsgSlash reduces an agent's reputation. The signer must be the module
// authority or an allow-listed caller.
type MsgSlash struct {
	Caller  string `json:"caller"`
	Agent   string `json:"agent"`
	Penalty uint32 `json:"penalty"`
	Reason  string `json:"reason"`
}

func (msg *MsgSlash) Reset()         { *msg = MsgSlash{} }
func (msg *MsgSlash) String() string { return fmt.Sprintf("MsgSlash{%s by %s}", msg.Agent, msg.Caller) }
func (*MsgSlash) ProtoMessage()      {}

func (msg *MsgSlash) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return ErrInvalidAddress.Wrapf("caller: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Agent); err != nil {
		return ErrInvalidAddress.Wrapf("agent: %v", err)
	}
	if msg.Penalty == 0 {
		return ErrInvalidPenalty
	}
	if msg.Reason == "" {
		return ErrInvalidParams.Wrap("slash reason must not be empty")
	}
	return nil
}

func (msg *MsgSlash) GetSigners() []sdk.AccAddress {
	caller, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{caller}
}

// MsgUpdateMembershipRoot replaces the published membership root.
type MsgUpdateMembershipRoot struct {
	Authority string `json:"authority"`
	Root      string `json:"root"` // hex, 32 bytes
}

func (msg *MsgUpdateMembershipRoot) Reset() { *msg = MsgUpdateMembershipRoot{} }
func (msg *MsgUpdateMembershipRoot) String() string {
	return fmt.Sprintf("MsgUpdateMembershipRoot{%s}", msg.Root)
}
func (*MsgUpdateMembershipRoot) ProtoMessage() {}

func (msg *MsgUpdateMembershipRoot) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %v", err)
	}
	root, err := hex.DecodeString(msg.Root)
	if err != nil || len(root) != 32 {
		return ErrInvalidRoot
	}
	return nil
}

func (msg *MsgUpdateMembershipRoot) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// MsgWhitelistCaller adds a caller to the reputation-mutation allow list.
type MsgWhitelistCaller struct {
	Authority string `json:"authority"`
	Caller    string `json:"caller"`
}

func (msg *MsgWhitelistCaller) Reset()         { *msg = MsgWhitelistCaller{} }
func (msg *MsgWhitelistCaller) String() string { return fmt.Sprintf("MsgWhitelistCaller{%s}", msg.Caller) }
func (*MsgWhitelistCaller) ProtoMessage()      {}

func (msg *MsgWhitelistCaller) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return ErrInvalidAddress.Wrapf("caller: %v", err)
	}
	return nil
}

func (msg *MsgWhitelistCaller) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// MsgRemoveWhitelistedCaller removes a caller from the allow list.
type MsgRemoveWhitelistedCaller struct {
	Authority string `json:"authority"`
	Caller    string `json:"caller"`
}

func (msg *MsgRemoveWhitelistedCaller) Reset() { *msg = MsgRemoveWhitelistedCaller{} }
func (msg *MsgRemoveWhitelistedCaller) String() string {
	return fmt.Sprintf("MsgRemoveWhitelistedCaller{%s}", msg.Caller)
}
func (*MsgRemoveWhitelistedCaller) ProtoMessage() {}

func (msg *MsgRemoveWhitelistedCaller) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return ErrInvalidAddress.Wrapf("caller: %v", err)
	}
	return nil
}

func (msg *MsgRemoveWhitelistedCaller) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// MsgDeactivate flips an agent passport to inactive.
type MsgDeactivate struct {
	Authority string `json:"authority"`
	Agent     string `json:"agent"`
}

func (msg *MsgDeactivate) Reset()         { *msg = MsgDeactivate{} }
func (msg *MsgDeactivate) String() string { return fmt.Sprintf("MsgDeactivate{%s}", msg.Agent) }
func (*MsgDeactivate) ProtoMessage()      {}

func (msg *MsgDeactivate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Agent); err != nil {
		return ErrInvalidAddress.Wrapf("agent: %v", err)
	}
	return nil
}

func (msg *MsgDeactivate) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// MsgReactivate flips an inactive agent passport back to active.
type MsgReactivate struct {
	Authority string `json:"authority"`
	Agent     string `json:"agent"`
}

func (msg *MsgReactivate) Reset()         { *msg = MsgReactivate{} }
func (msg *MsgReactivate) String() string { return fmt.Sprintf("MsgReactivate{%s}", msg.Agent) }
func (*MsgReactivate) ProtoMessage()      {}

func (msg *MsgReactivate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Agent); err != nil {
		return ErrInvalidAddress.Wrapf("agent: %v", err)
	}
	return nil
}

func (msg *MsgReactivate) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// MsgUpdateParams replaces the registry module parameters.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return "MsgUpdateParams{registry}" }
func (*MsgUpdateParams) ProtoMessage()      {}

func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %v", err)
	}
	return msg.Params.Validate()
}

func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}
