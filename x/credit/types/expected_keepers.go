package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegistryKeeper is the subset of the registry keeper needed to gate
// borrowing on reputation.
type RegistryKeeper interface {
	CheckEligibility(ctx context.Context, agent sdk.AccAddress) bool
	ReputationOf(ctx context.Context, agent sdk.AccAddress) (uint32, bool)
}

// BankKeeper moves payment-denom funds between accounts and the module.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// Coin builds a single-denom coin set for bank transfers.
func Coin(denom string, amount math.Int) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(denom, amount))
}
