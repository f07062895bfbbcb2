package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgListAsset{}
	_ sdk.Msg = &MsgUpdateListing{}
	_ sdk.Msg = &MsgDelistAsset{}
	_ sdk.Msg = &MsgSettle{}
	_ sdk.Msg = &MsgSwapSettle{}
	_ sdk.Msg = &MsgRestockInventory{}
	_ sdk.Msg = &MsgSetPaused{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgListAsset lists a new asset for settlement. Authority only.
type MsgListAsset struct {
	Authority string       `json:"authority"`
	Listing   AssetListing `json:"listing"`
}

func (msg *MsgListAsset) Reset()         { *msg = MsgListAsset{} }
func (msg *MsgListAsset) String() string { return "MsgListAsset" }
func (msg *MsgListAsset) ProtoMessage()  {}

func (msg *MsgListAsset) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	return msg.Listing.Validate()
}

func (msg *MsgListAsset) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// MsgUpdateListing replaces an existing listing. Authority only.
type MsgUpdateListing struct {
	Authority string       `json:"authority"`
	Listing   AssetListing `json:"listing"`
}

func (msg *MsgUpdateListing) Reset()         { *msg = MsgUpdateListing{} }
func (msg *MsgUpdateListing) String() string { return "MsgUpdateListing" }
func (msg *MsgUpdateListing) ProtoMessage()  {}

func (msg *MsgUpdateListing) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	return msg.Listing.Validate()
}

func (msg *MsgUpdateListing) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// MsgDelistAsset deactivates a listing. Authority only.
type MsgDelistAsset struct {
	Authority  string `json:"authority"`
	AssetDenom string `json:"asset_denom"`
}

func (msg *MsgDelistAsset) Reset()         { *msg = MsgDelistAsset{} }
func (msg *MsgDelistAsset) String() string { return "MsgDelistAsset" }
func (msg *MsgDelistAsset) ProtoMessage()  {}

func (msg *MsgDelistAsset) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	return sdk.ValidateDenom(msg.AssetDenom)
}

func (msg *MsgDelistAsset) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// MsgSettle executes an atomic purchase of a listed asset.
type MsgSettle struct {
	Buyer        string   `json:"buyer"`
	AssetDenom   string   `json:"asset_denom"`
	Amount       math.Int `json:"amount"`
	QuoteExpiry  int64    `json:"quote_expiry"`
	Proof        []byte   `json:"proof"`
	PublicValues []byte   `json:"public_values"`
	AuthTag      byte     `json:"auth_tag"`
	AuthPayload  []byte   `json:"auth_payload,omitempty"`
}

func (msg *MsgSettle) Reset()         { *msg = MsgSettle{} }
func (msg *MsgSettle) String() string { return "MsgSettle" }
func (msg *MsgSettle) ProtoMessage()  {}

func (msg *MsgSettle) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return ErrInvalidAddress.Wrapf("buyer: %s", err)
	}
	if err := sdk.ValidateDenom(msg.AssetDenom); err != nil {
		return ErrInvalidAsset.Wrapf("denom: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrZeroAmount
	}
	if len(msg.Proof) == 0 {
		return ErrInvalidProof.Wrap("empty proof")
	}
	return nil
}

func (msg *MsgSettle) GetSigners() []sdk.AccAddress {
	buyer, _ := sdk.AccAddressFromBech32(msg.Buyer)
	return []sdk.AccAddress{buyer}
}

// MsgSwapSettle settles by swapping one listed asset for another through
// the oracle price route.
type MsgSwapSettle struct {
	Buyer        string   `json:"buyer"`
	AssetIn      string   `json:"asset_in"`
	AssetOut     string   `json:"asset_out"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
	QuoteExpiry  int64    `json:"quote_expiry"`
	Proof        []byte   `json:"proof"`
	PublicValues []byte   `json:"public_values"`
}

func (msg *MsgSwapSettle) Reset()         { *msg = MsgSwapSettle{} }
func (msg *MsgSwapSettle) String() string { return "MsgSwapSettle" }
func (msg *MsgSwapSettle) ProtoMessage()  {}

func (msg *MsgSwapSettle) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return ErrInvalidAddress.Wrapf("buyer: %s", err)
	}
	if err := sdk.ValidateDenom(msg.AssetIn); err != nil {
		return ErrInvalidAsset.Wrapf("asset in: %s", err)
	}
	if err := sdk.ValidateDenom(msg.AssetOut); err != nil {
		return ErrInvalidAsset.Wrapf("asset out: %s", err)
	}
	if msg.AssetIn == msg.AssetOut {
		return ErrInvalidAsset.Wrap("swap route must change denom")
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return ErrZeroAmount
	}
	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return ErrInvalidParams.Wrap("min amount out must be non-negative")
	}
	if len(msg.Proof) == 0 {
		return ErrInvalidProof.Wrap("empty proof")
	}
	return nil
}

func (msg *MsgSwapSettle) GetSigners() []sdk.AccAddress {
	buyer, _ := sdk.AccAddressFromBech32(msg.Buyer)
	return []sdk.AccAddress{buyer}
}

// MsgRestockInventory moves asset inventory from the authority into the
// module account for delivery.
type MsgRestockInventory struct {
	Authority  string   `json:"authority"`
	AssetDenom string   `json:"asset_denom"`
	Amount     math.Int `json:"amount"`
}

func (msg *MsgRestockInventory) Reset()         { *msg = MsgRestockInventory{} }
func (msg *MsgRestockInventory) String() string { return "MsgRestockInventory" }
func (msg *MsgRestockInventory) ProtoMessage()  {}

func (msg *MsgRestockInventory) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	if err := sdk.ValidateDenom(msg.AssetDenom); err != nil {
		return ErrInvalidAsset.Wrapf("denom: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrZeroAmount
	}
	return nil
}

func (msg *MsgRestockInventory) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// MsgSetPaused toggles the settlement circuit breaker. Authority only.
type MsgSetPaused struct {
	Authority string `json:"authority"`
	Paused    bool   `json:"paused"`
}

func (msg *MsgSetPaused) Reset()         { *msg = MsgSetPaused{} }
func (msg *MsgSetPaused) String() string { return "MsgSetPaused" }
func (msg *MsgSetPaused) ProtoMessage()  {}

func (msg *MsgSetPaused) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	return nil
}

func (msg *MsgSetPaused) GetSigners() []sdk.AccAddress {
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
