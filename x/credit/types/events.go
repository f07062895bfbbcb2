package types

// credit module event types
const (
	EventTypeVaultDeposit    = "vault_deposit"
	EventTypeVaultWithdraw   = "vault_withdraw"
	EventTypeCollateralStake = "collateral_staked"
	EventTypeCollateralUnstake = "collateral_unstaked"
	EventTypeBorrow          = "credit_borrowed"
	EventTypeRepay           = "credit_repaid"
	EventTypeLiquidation     = "position_liquidated"
	EventTypeInterestAccrued = "interest_accrued"

	AttributeKeyLender        = "lender"
	AttributeKeyAgent         = "agent"
	AttributeKeyLiquidator    = "liquidator"
	AttributeKeyAmount        = "amount"
	AttributeKeyShares        = "shares"
	AttributeKeyPrincipal     = "principal"
	AttributeKeyInterest      = "interest"
	AttributeKeyInterestPaid  = "interest_paid"
	AttributeKeyPrincipalPaid = "principal_paid"
	AttributeKeyCollateral    = "collateral"
	AttributeKeyDebtCovered   = "debt_covered"
	AttributeKeyHealthFactor  = "health_factor"
	AttributeKeyCreditLimit   = "credit_limit"
)
