package types

// GenesisState holds the credit module genesis data.
type GenesisState struct {
	Params   Params          `json:"params"`
	Vault    VaultState      `json:"vault"`
	Shares   []VaultShare    `json:"shares"`
	Accounts []CreditAccount `json:"accounts"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Vault:  NewVaultState(),
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if err := gs.Vault.Validate(); err != nil {
		return err
	}
	seenLenders := make(map[string]struct{}, len(gs.Shares))
	for _, share := range gs.Shares {
		if _, ok := seenLenders[share.Lender]; ok {
			return ErrInvalidParams.Wrapf("duplicate share entry for %s", share.Lender)
		}
		seenLenders[share.Lender] = struct{}{}
		if share.Shares.IsNil() || !share.Shares.IsPositive() {
			return ErrInvalidParams.Wrapf("shares for %s must be positive", share.Lender)
		}
	}
	seenAgents := make(map[string]struct{}, len(gs.Accounts))
	for _, acct := range gs.Accounts {
		if _, ok := seenAgents[acct.Agent]; ok {
			return ErrInvalidParams.Wrapf("duplicate credit account for %s", acct.Agent)
		}
		seenAgents[acct.Agent] = struct{}{}
		if err := acct.Validate(); err != nil {
			return err
		}
	}
	return nil
}
