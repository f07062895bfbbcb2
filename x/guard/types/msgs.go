package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgRegisterStrategy{}
	_ sdk.Msg = &MsgRegisterDelegate{}
	_ sdk.Msg = &MsgVerifyInference{}
	_ sdk.Msg = &MsgExecuteVerifiedAction{}
	_ sdk.Msg = &MsgRegisterVerifyingKey{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgRegisterStrategy binds (or rebinds) the agent to a model hash.
type MsgRegisterStrategy struct {
	Agent     string `json:"agent"`
	ModelHash string `json:"model_hash"`
}

func (msg *MsgRegisterStrategy) Reset()         { *msg = MsgRegisterStrategy{} }
func (msg *MsgRegisterStrategy) String() string { return "MsgRegisterStrategy" }
func (msg *MsgRegisterStrategy) ProtoMessage()  {}

func (msg *MsgRegisterStrategy) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Agent); err != nil {
		return ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	return ValidateModelHash(msg.ModelHash)
}

func (msg *MsgRegisterStrategy) GetSigners() []sdk.AccAddress {
	agent, _ := sdk.AccAddressFromBech32(msg.Agent)
	return []sdk.AccAddress{agent}
}

// MsgRegisterDelegate sets the agent's custody delegate and attestation key.
type MsgRegisterDelegate struct {
	Agent             string `json:"agent"`
	Delegate          string `json:"delegate"`
	AttestationPubKey []byte `json:"attestation_pub_key"`
}

func (msg *MsgRegisterDelegate) Reset()         { *msg = MsgRegisterDelegate{} }
func (msg *MsgRegisterDelegate) String() string { return "MsgRegisterDelegate" }
func (msg *MsgRegisterDelegate) ProtoMessage()  {}

func (msg *MsgRegisterDelegate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Agent); err != nil {
		return ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Delegate); err != nil {
		return ErrInvalidAddress.Wrapf("delegate: %s", err)
	}
	if len(msg.AttestationPubKey) == 0 {
		return ErrNoAttestationKey.Wrap("attestation public key required")
	}
	return nil
}

func (msg *MsgRegisterDelegate) GetSigners() []sdk.AccAddress {
	agent, _ := sdk.AccAddressFromBech32(msg.Agent)
	return []sdk.AccAddress{agent}
}

// MsgVerifyInference submits a baseline-mode inference proof.
type MsgVerifyInference struct {
	Agent        string `json:"agent"`
	Proof        []byte `json:"proof"`
	PublicValues []byte `json:"public_values"`
}

func (msg *MsgVerifyInference) Reset()         { *msg = MsgVerifyInference{} }
func (msg *MsgVerifyInference) String() string { return "MsgVerifyInference" }
func (msg *MsgVerifyInference) ProtoMessage()  {}

func (msg *MsgVerifyInference) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Agent); err != nil {
		return ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	if len(msg.Proof) == 0 {
		return ErrProofVerificationFailed.Wrap("empty proof")
	}
	if len(msg.PublicValues) != PublicValuesLength {
		return ErrMalformedPublicValues.Wrapf("expected %d bytes, got %d", PublicValuesLength, len(msg.PublicValues))
	}
	return nil
}

func (msg *MsgVerifyInference) GetSigners() []sdk.AccAddress {
	agent, _ := sdk.AccAddressFromBech32(msg.Agent)
	return []sdk.AccAddress{agent}
}

// MsgExecuteVerifiedAction runs a strict-mode custody-verified action.
type MsgExecuteVerifiedAction struct {
	Caller         string `json:"caller"`
	Agent          string `json:"agent"`
	ActionPayload  []byte `json:"action_payload"`
	Nonce          uint64 `json:"nonce"`
	AttestationSig []byte `json:"attestation_sig"`
	Proof          []byte `json:"proof"`
	PublicValues   []byte `json:"public_values"`
}

func (msg *MsgExecuteVerifiedAction) Reset()         { *msg = MsgExecuteVerifiedAction{} }
func (msg *MsgExecuteVerifiedAction) String() string { return "MsgExecuteVerifiedAction" }
func (msg *MsgExecuteVerifiedAction) ProtoMessage()  {}

func (msg *MsgExecuteVerifiedAction) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return ErrInvalidAddress.Wrapf("caller: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Agent); err != nil {
		return ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	if len(msg.ActionPayload) == 0 {
		return ErrInvalidParams.Wrap("empty action payload")
	}
	if len(msg.AttestationSig) == 0 {
		return ErrInvalidAttestation.Wrap("empty attestation signature")
	}
	if len(msg.Proof) == 0 {
		return ErrProofVerificationFailed.Wrap("empty proof")
	}
	if len(msg.PublicValues) != PublicValuesLength {
		return ErrMalformedPublicValues.Wrapf("expected %d bytes, got %d", PublicValuesLength, len(msg.PublicValues))
	}
	return nil
}

func (msg *MsgExecuteVerifiedAction) GetSigners() []sdk.AccAddress {
	caller, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{caller}
}

// MsgRegisterVerifyingKey installs a verifying key for a program id.
// Authority only.
type MsgRegisterVerifyingKey struct {
	Authority string `json:"authority"`
	ProgramID string `json:"program_id"`
	KeyData   []byte `json:"key_data"`
}

func (msg *MsgRegisterVerifyingKey) Reset()         { *msg = MsgRegisterVerifyingKey{} }
func (msg *MsgRegisterVerifyingKey) String() string { return "MsgRegisterVerifyingKey" }
func (msg *MsgRegisterVerifyingKey) ProtoMessage()  {}

func (msg *MsgRegisterVerifyingKey) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	if msg.ProgramID == "" {
		return ErrInvalidParams.Wrap("program id must be set")
	}
	if len(msg.KeyData) == 0 {
		return ErrInvalidParams.Wrap("verifying key data required")
	}
	return nil
}

func (msg *MsgRegisterVerifyingKey) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// MsgUpdateParams replaces the module parameters. Governance only.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return "MsgUpdateParams" }
func (msg *MsgUpdateParams) ProtoMessage()  {}

func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	return msg.Params.Validate()
}

func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}
