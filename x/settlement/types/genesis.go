package types

// GenesisState holds the settlement module genesis data.
type GenesisState struct {
	Params            Params         `json:"params"`
	Listings          []AssetListing `json:"listings"`
	SettlementCounter uint64         `json:"settlement_counter"`
	Paused            bool           `json:"paused"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(gs.Listings))
	for _, listing := range gs.Listings {
		if _, ok := seen[listing.Denom]; ok {
			return ErrInvalidParams.Wrapf("duplicate listing for %s", listing.Denom)
		}
		seen[listing.Denom] = struct{}{}
		if err := listing.Validate(); err != nil {
			return err
		}
	}
	return nil
}
