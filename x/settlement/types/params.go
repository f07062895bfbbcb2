package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params holds the settlement module parameters.
type Params struct {
	// FeeBps is the protocol fee taken from every settlement.
	FeeBps uint32 `json:"fee_bps"`
	// Treasury receives protocol fees.
	Treasury string `json:"treasury"`
	// PaymentDenom is the denom settlements are priced and paid in.
	PaymentDenom string `json:"payment_denom"`
	// QuoteValiditySeconds bounds how long a quote may be acted on.
	QuoteValiditySeconds int64 `json:"quote_validity_seconds"`
}

// Default parameter values.
const (
	DefaultFeeBps               = 5
	DefaultPaymentDenom         = "uusdc"
	DefaultQuoteValiditySeconds = 300
)

// DefaultParams returns the default settlement parameters. The treasury
// defaults to the governance module account until set explicitly.
func DefaultParams() Params {
	return Params{
		FeeBps:               DefaultFeeBps,
		Treasury:             "",
		PaymentDenom:         DefaultPaymentDenom,
		QuoteValiditySeconds: DefaultQuoteValiditySeconds,
	}
}

// Validate checks parameter invariants. An empty treasury is allowed at
// genesis; settlement rejects fees until one is configured.
func (p Params) Validate() error {
	if p.FeeBps >= BpsDenominator {
		return ErrInvalidParams.Wrapf("fee %d bps must be below %d", p.FeeBps, BpsDenominator)
	}
	if p.Treasury != "" {
		if _, err := sdk.AccAddressFromBech32(p.Treasury); err != nil {
			return ErrInvalidAddress.Wrapf("treasury: %s", err)
		}
	}
	if p.PaymentDenom == "" {
		return ErrInvalidParams.Wrap("payment denom must be set")
	}
	if p.QuoteValiditySeconds <= 0 {
		return ErrInvalidParams.Wrap("quote validity must be positive")
	}
	return nil
}
