package api

// AssetResponse is the REST projection of an asset listing plus its
// current module inventory.
type AssetResponse struct {
	Denom        string `json:"denom"`
	Issuer       string `json:"issuer"`
	CircuitID    string `json:"circuit_id"`
	PricePerUnit string `json:"price_per_unit"`
	Active       bool   `json:"active"`
	Inventory    string `json:"inventory"`
}

// QuoteResponse is the REST projection of a settlement quote.
type QuoteResponse struct {
	QuoteID    string `json:"quote_id"`
	AssetDenom string `json:"asset_denom"`
	Amount     string `json:"amount"`
	TotalPrice string `json:"total_price"`
	Fee        string `json:"fee"`
	Expiry     int64  `json:"expiry"`
}

// AgentStatusResponse aggregates an agent's passport, eligibility and
// credit position in one read.
type AgentStatusResponse struct {
	Address         string `json:"address"`
	Registered      bool   `json:"registered"`
	Active          bool   `json:"active"`
	Reputation      uint32 `json:"reputation"`
	Eligible        bool   `json:"eligible"`
	Reason          string `json:"reason,omitempty"`
	Verified        bool   `json:"verified"`
	VerifiedUntil   int64  `json:"verified_until,omitempty"`
	SettlementCount uint64 `json:"settlement_count"`
	LifetimeVolume  string `json:"lifetime_volume"`
	CreditLimit     string `json:"credit_limit"`
	Debt            string `json:"debt"`
	HealthFactor    string `json:"health_factor,omitempty"`
}

// VaultResponse is the REST projection of the lending vault.
type VaultResponse struct {
	TotalShares    string `json:"total_shares"`
	TotalDeposits  string `json:"total_deposits"`
	TotalBorrowed  string `json:"total_borrowed"`
	IdleLiquidity  string `json:"idle_liquidity"`
	UtilizationBps string `json:"utilization_bps"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
