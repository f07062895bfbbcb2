package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// CreditAccount tracks a single agent's collateral and outstanding debt.
// Interest is accrued lazily: every state-changing operation first rolls
// the account forward to the current block time.
type CreditAccount struct {
	Agent           string   `json:"agent"`
	Principal       math.Int `json:"principal"`
	InterestAccrued math.Int `json:"interest_accrued"`
	LastAccrual     int64    `json:"last_accrual"`
	Collateral      math.Int `json:"collateral"`
}

// NewCreditAccount returns an empty account for the agent anchored at
// the given block time.
func NewCreditAccount(agent sdk.AccAddress, now int64) CreditAccount {
	return CreditAccount{
		Agent:           agent.String(),
		Principal:       math.ZeroInt(),
		InterestAccrued: math.ZeroInt(),
		LastAccrual:     now,
		Collateral:      math.ZeroInt(),
	}
}

// Debt returns principal plus accrued interest as of the last accrual.
func (a CreditAccount) Debt() math.Int {
	return a.Principal.Add(a.InterestAccrued)
}

// IsEmpty reports whether the account holds no debt and no collateral
// and can be deleted from state.
func (a CreditAccount) IsEmpty() bool {
	return a.Principal.IsZero() && a.InterestAccrued.IsZero() && a.Collateral.IsZero()
}

// Validate performs stateless sanity checks on a stored account.
func (a CreditAccount) Validate() error {
	if _, err := sdk.AccAddressFromBech32(a.Agent); err != nil {
		return ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	if a.Principal.IsNil() || a.Principal.IsNegative() {
		return ErrInvalidParams.Wrap("principal must be non-negative")
	}
	if a.InterestAccrued.IsNil() || a.InterestAccrued.IsNegative() {
		return ErrInvalidParams.Wrap("interest accrued must be non-negative")
	}
	if a.Collateral.IsNil() || a.Collateral.IsNegative() {
		return ErrInvalidParams.Wrap("collateral must be non-negative")
	}
	return nil
}

// VaultState is the aggregate accounting for the shared lending vault.
// TotalDeposits grows when interest is repaid, which is how yield is
// socialized across lenders without touching individual share balances.
type VaultState struct {
	TotalShares   math.Int `json:"total_shares"`
	TotalDeposits math.Int `json:"total_deposits"`
	TotalBorrowed math.Int `json:"total_borrowed"`
}

// NewVaultState returns a zeroed vault.
func NewVaultState() VaultState {
	return VaultState{
		TotalShares:   math.ZeroInt(),
		TotalDeposits: math.ZeroInt(),
		TotalBorrowed: math.ZeroInt(),
	}
}

// AvailableLiquidity is the portion of deposits not currently lent out.
func (v VaultState) AvailableLiquidity() math.Int {
	return v.TotalDeposits.Sub(v.TotalBorrowed)
}

// Validate performs stateless sanity checks on the vault aggregates.
func (v VaultState) Validate() error {
	for _, f := range []struct {
		name string
		val  math.Int
	}{
		{"total_shares", v.TotalShares},
		{"total_deposits", v.TotalDeposits},
		{"total_borrowed", v.TotalBorrowed},
	} {
		if f.val.IsNil() || f.val.IsNegative() {
			return ErrInvalidParams.Wrapf("%s must be non-negative", f.name)
		}
	}
	if v.TotalBorrowed.GT(v.TotalDeposits) {
		return ErrInvalidParams.Wrap("total borrowed exceeds total deposits")
	}
	return nil
}

// VaultShare records one lender's share balance.
type VaultShare struct {
	Lender string   `json:"lender"`
	Shares math.Int `json:"shares"`
}
