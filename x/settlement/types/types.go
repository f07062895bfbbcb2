package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AssetListing describes a tokenized asset available for settlement.
// PricePerUnit is in payment-denom base units per asset unit.
type AssetListing struct {
	Denom        string   `json:"denom"`
	Issuer       string   `json:"issuer"`
	CircuitID    string   `json:"circuit_id"`
	PricePerUnit math.Int `json:"price_per_unit"`
	Active       bool     `json:"active"`
}

// Validate performs stateless sanity checks on a listing.
func (l AssetListing) Validate() error {
	if err := sdk.ValidateDenom(l.Denom); err != nil {
		return ErrInvalidAsset.Wrapf("denom: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(l.Issuer); err != nil {
		return ErrInvalidAddress.Wrapf("issuer: %s", err)
	}
	if l.CircuitID == "" {
		return ErrInvalidParams.Wrap("circuit id must be set")
	}
	if l.PricePerUnit.IsNil() || !l.PricePerUnit.IsPositive() {
		return ErrInvalidParams.Wrap("price per unit must be positive")
	}
	return nil
}

// Quote is an ephemeral price projection; it is never stored.
type Quote struct {
	QuoteID    string   `json:"quote_id"`
	AssetDenom string   `json:"asset_denom"`
	Amount     math.Int `json:"amount"`
	TotalPrice math.Int `json:"total_price"`
	Fee        math.Int `json:"fee"`
	Expiry     int64    `json:"expiry"`
}

// SettlementInstruction is the action payload strict mode forwards to
// the settlement executor. The compliance proof was already checked by
// the guard, so the instruction carries only settlement inputs.
type SettlementInstruction struct {
	AssetDenom  string   `json:"asset_denom"`
	Amount      math.Int `json:"amount"`
	QuoteExpiry int64    `json:"quote_expiry"`
	AuthTag     byte     `json:"auth_tag"`
	AuthPayload []byte   `json:"auth_payload"`
}

// Validate performs stateless checks on a decoded instruction.
func (si SettlementInstruction) Validate() error {
	if err := sdk.ValidateDenom(si.AssetDenom); err != nil {
		return ErrInvalidActionPayload.Wrapf("denom: %s", err)
	}
	if si.Amount.IsNil() || !si.Amount.IsPositive() {
		return ErrInvalidActionPayload.Wrap("amount must be positive")
	}
	return nil
}
