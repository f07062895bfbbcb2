package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegistryKeeper is the registry surface settlement needs: the
// eligibility gate before settling and the reputation credit afterwards.
type RegistryKeeper interface {
	CheckEligibility(ctx context.Context, agent sdk.AccAddress) bool
	RecordSettlement(ctx context.Context, caller, agent sdk.AccAddress, volume math.Int) error
}

// GuardKeeper authorizes settlements with a compliance proof.
type GuardKeeper interface {
	AuthorizeSettlement(ctx sdk.Context, agent sdk.AccAddress, circuitID string, proof, publicValues []byte) error
}

// BankKeeper moves funds and inventory.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// OracleKeeper prices a swap route. The default implementation prices
// through the listings table; tests may substitute fixed rates.
type OracleKeeper interface {
	Quote(ctx sdk.Context, amountIn math.Int, route []string) (math.Int, error)
}

// NonceConsumer is the replay-protection surface used by time-windowed
// funds authorizations.
type NonceConsumer interface {
	IsConsumed(ctx sdk.Context, owner sdk.AccAddress, nonce uint64) bool
	Consume(ctx sdk.Context, owner sdk.AccAddress, nonce uint64) error
}

// Coin builds a single-denom coin set for bank transfers.
func Coin(denom string, amount math.Int) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(denom, amount))
}
