package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgDeposit{}
	_ sdk.Msg = &MsgWithdraw{}
	_ sdk.Msg = &MsgStakeCollateral{}
	_ sdk.Msg = &MsgUnstakeCollateral{}
	_ sdk.Msg = &MsgBorrow{}
	_ sdk.Msg = &MsgRepay{}
	_ sdk.Msg = &MsgLiquidate{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgDeposit supplies liquidity to the lending vault in exchange for shares.
type MsgDeposit struct {
	Lender string   `json:"lender"`
	Amount math.Int `json:"amount"`
}

func (msg *MsgDeposit) Reset()         { *msg = MsgDeposit{} }
func (msg *MsgDeposit) String() string { return "MsgDeposit" }
func (msg *MsgDeposit) ProtoMessage()  {}

func (msg *MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Lender); err != nil {
		return ErrInvalidAddress.Wrapf("lender: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrZeroAmount
	}
	return nil
}

func (msg *MsgDeposit) GetSigners() []sdk.AccAddress {
	lender, _ := sdk.AccAddressFromBech32(msg.Lender)
	return []sdk.AccAddress{lender}
}

// MsgWithdraw redeems vault shares for the underlying deposit plus yield.
type MsgWithdraw struct {
	Lender string   `json:"lender"`
	Shares math.Int `json:"shares"`
}

func (msg *MsgWithdraw) Reset()         { *msg = MsgWithdraw{} }
func (msg *MsgWithdraw) String() string { return "MsgWithdraw" }
func (msg *MsgWithdraw) ProtoMessage()  {}

func (msg *MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Lender); err != nil {
		return ErrInvalidAddress.Wrapf("lender: %s", err)
	}
	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return ErrZeroAmount.Wrap("shares must be positive")
	}
	return nil
}

func (msg *MsgWithdraw) GetSigners() []sdk.AccAddress {
	lender, _ := sdk.AccAddressFromBech32(msg.Lender)
	return []sdk.AccAddress{lender}
}

// MsgStakeCollateral locks collateral against the agent's credit account.
type MsgStakeCollateral struct {
	Agent  string   `json:"agent"`
	Amount math.Int `json:"amount"`
}

func (msg *MsgStakeCollateral) Reset()         { *msg = MsgStakeCollateral{} }
func (msg *MsgStakeCollateral) String() string { return "MsgStakeCollateral" }
func (msg *MsgStakeCollateral) ProtoMessage()  {}

func (msg *MsgStakeCollateral) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Agent); err != nil {
		return ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrZeroAmount
	}
	return nil
}

func (msg *MsgStakeCollateral) GetSigners() []sdk.AccAddress {
	agent, _ := sdk.AccAddressFromBech32(msg.Agent)
	return []sdk.AccAddress{agent}
}

// MsgUnstakeCollateral releases collateral not required against debt.
type MsgUnstakeCollateral struct {
	Agent  string   `json:"agent"`
	Amount math.Int `json:"amount"`
}

func (msg *MsgUnstakeCollateral) Reset()         { *msg = MsgUnstakeCollateral{} }
func (msg *MsgUnstakeCollateral) String() string { return "MsgUnstakeCollateral" }
func (msg *MsgUnstakeCollateral) ProtoMessage()  {}

func (msg *MsgUnstakeCollateral) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Agent); err != nil {
		return ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrZeroAmount
	}
	return nil
}

func (msg *MsgUnstakeCollateral) GetSigners() []sdk.AccAddress {
	agent, _ := sdk.AccAddressFromBech32(msg.Agent)
	return []sdk.AccAddress{agent}
}

// MsgBorrow draws credit from the vault against staked collateral.
type MsgBorrow struct {
	Agent  string   `json:"agent"`
	Amount math.Int `json:"amount"`
}

func (msg *MsgBorrow) Reset()         { *msg = MsgBorrow{} }
func (msg *MsgBorrow) String() string { return "MsgBorrow" }
func (msg *MsgBorrow) ProtoMessage()  {}

func (msg *MsgBorrow) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Agent); err != nil {
		return ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrZeroAmount
	}
	return nil
}

func (msg *MsgBorrow) GetSigners() []sdk.AccAddress {
	agent, _ := sdk.AccAddressFromBech32(msg.Agent)
	return []sdk.AccAddress{agent}
}

// MsgRepay pays down interest first, then principal.
type MsgRepay struct {
	Agent  string   `json:"agent"`
	Amount math.Int `json:"amount"`
}

func (msg *MsgRepay) Reset()         { *msg = MsgRepay{} }
func (msg *MsgRepay) String() string { return "MsgRepay" }
func (msg *MsgRepay) ProtoMessage()  {}

func (msg *MsgRepay) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Agent); err != nil {
		return ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrZeroAmount
	}
	return nil
}

func (msg *MsgRepay) GetSigners() []sdk.AccAddress {
	agent, _ := sdk.AccAddressFromBech32(msg.Agent)
	return []sdk.AccAddress{agent}
}

// MsgLiquidate closes an undercollateralized position. The liquidator
// covers the full debt and receives the staked collateral.
type MsgLiquidate struct {
	Liquidator string `json:"liquidator"`
	Agent      string `json:"agent"`
}

func (msg *MsgLiquidate) Reset()         { *msg = MsgLiquidate{} }
func (msg *MsgLiquidate) String() string { return "MsgLiquidate" }
func (msg *MsgLiquidate) ProtoMessage()  {}

func (msg *MsgLiquidate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Liquidator); err != nil {
		return ErrInvalidAddress.Wrapf("liquidator: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Agent); err != nil {
		return ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	return nil
}

func (msg *MsgLiquidate) GetSigners() []sdk.AccAddress {
	liquidator, _ := sdk.AccAddressFromBech32(msg.Liquidator)
	return []sdk.AccAddress{liquidator}
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
