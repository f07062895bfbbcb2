package keeper

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/settlement/types"
)

// getSettlementCounter returns the monotonic settlement counter.
func (k *Keeper) getSettlementCounter(ctx sdk.Context) uint64 {
	bz := k.getStore(ctx).Get(SettlementCounterKey)
	if len(bz) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (k *Keeper) setSettlementCounter(ctx sdk.Context, counter uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, counter)
	k.getStore(ctx).Set(SettlementCounterKey, bz)
}

// settlementID derives a collision-free identifier from the settlement
// inputs, the monotonic counter and the block time.
func settlementID(buyer sdk.AccAddress, assetDenom string, amount, totalPrice math.Int, counter uint64, blockTime int64) string {
	h := sha256.New()
	h.Write(buyer.Bytes())
	h.Write([]byte(assetDenom))
	h.Write([]byte(amount.String()))
	h.Write([]byte(totalPrice.String()))

	counterBz := make([]byte, 8)
	binary.BigEndian.PutUint64(counterBz, counter)
	h.Write(counterBz)

	timeBz := make([]byte, 8)
	binary.BigEndian.PutUint64(timeBz, uint64(blockTime))
	h.Write(timeBz)

	return hex.EncodeToString(h.Sum(nil))
}

// Settle executes an atomic purchase of a listed asset: funds pulled from
// the buyer, split between issuer and treasury, inventory delivered, and
// the registry credited. Every step must succeed or the whole settlement
// reverts with the bank sends.
func (k *Keeper) Settle(
	ctx sdk.Context,
	buyer sdk.AccAddress,
	assetDenom string,
	amount math.Int,
	quoteExpiry int64,
	proof, publicValues []byte,
	auth types.FundsAuthorization,
) (string, math.Int, math.Int, error) {
	if k.IsPaused(ctx) {
		k.metrics.Failures.WithLabelValues("paused").Inc()
		return "", math.Int{}, math.Int{}, types.ErrPaused
	}
	listing, err := k.activeListing(ctx, assetDenom)
	if err != nil {
		k.metrics.Failures.WithLabelValues("invalid_asset").Inc()
		return "", math.Int{}, math.Int{}, err
	}
	if amount.IsNil() || !amount.IsPositive() {
		k.metrics.Failures.WithLabelValues("zero_amount").Inc()
		return "", math.Int{}, math.Int{}, types.ErrZeroAmount
	}
	if ctx.BlockTime().Unix() > quoteExpiry {
		k.metrics.Failures.WithLabelValues("quote_expired").Inc()
		return "", math.Int{}, math.Int{}, types.ErrQuoteExpired.Wrapf("expiry %d", quoteExpiry)
	}

	if err := k.guardKeeper.AuthorizeSettlement(ctx, buyer, listing.CircuitID, proof, publicValues); err != nil {
		k.metrics.Failures.WithLabelValues("proof_rejected").Inc()
		return "", math.Int{}, math.Int{}, types.ErrInvalidProof.Wrap(err.Error())
	}

	return k.executeSettlement(ctx, buyer, listing, amount, auth)
}

// executeSettlement runs the fund movement and delivery once compliance
// has been established. Shared by Settle and the strict-mode executor.
func (k *Keeper) executeSettlement(
	ctx sdk.Context,
	buyer sdk.AccAddress,
	listing types.AssetListing,
	amount math.Int,
	auth types.FundsAuthorization,
) (string, math.Int, math.Int, error) {
	params := k.GetParams(ctx)

	totalPrice, err := SafeMul(amount, listing.PricePerUnit)
	if err != nil {
		return "", math.Int{}, math.Int{}, err
	}
	fee, err := SafeMulDiv(totalPrice, math.NewIntFromUint64(uint64(params.FeeBps)), math.NewInt(types.BpsDenominator))
	if err != nil {
		return "", math.Int{}, math.Int{}, err
	}
	issuerAmount := totalPrice.Sub(fee)

	if fee.IsPositive() && params.Treasury == "" {
		return "", math.Int{}, math.Int{}, types.ErrInvalidParams.Wrap("treasury not configured")
	}

	inventory := k.Inventory(ctx, listing.Denom)
	if inventory.LT(amount) {
		k.metrics.Failures.WithLabelValues("inventory").Inc()
		return "", math.Int{}, math.Int{}, types.ErrInsufficientInventory.Wrapf(
			"have %s, need %s", inventory, amount)
	}

	// Pull the full payment into the module account, all or nothing.
	if err := auth.Pull(ctx, k.authEnv(params), buyer, totalPrice); err != nil {
		k.metrics.Failures.WithLabelValues("authorization").Inc()
		return "", math.Int{}, math.Int{}, err
	}

	issuer := sdk.MustAccAddressFromBech32(listing.Issuer)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, issuer, types.Coin(params.PaymentDenom, issuerAmount)); err != nil {
		return "", math.Int{}, math.Int{}, err
	}
	if fee.IsPositive() {
		treasury := sdk.MustAccAddressFromBech32(params.Treasury)
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, treasury, types.Coin(params.PaymentDenom, fee)); err != nil {
			return "", math.Int{}, math.Int{}, err
		}
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, buyer, types.Coin(listing.Denom, amount)); err != nil {
		return "", math.Int{}, math.Int{}, err
	}

	if err := k.registryKeeper.RecordSettlement(ctx, k.ModuleAddress(), buyer, totalPrice); err != nil {
		return "", math.Int{}, math.Int{}, err
	}

	counter := k.getSettlementCounter(ctx)
	id := settlementID(buyer, listing.Denom, amount, totalPrice, counter, ctx.BlockTime().Unix())
	k.setSettlementCounter(ctx, counter+1)

	k.metrics.SettlementsTotal.Inc()
	k.metrics.SettlementVolume.Add(float64(totalPrice.Int64()))
	k.metrics.FeesCollected.Add(float64(fee.Int64()))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSettlement,
			sdk.NewAttribute(types.AttributeKeySettlementID, id),
			sdk.NewAttribute(types.AttributeKeyBuyer, buyer.String()),
			sdk.NewAttribute(types.AttributeKeyAssetDenom, listing.Denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyTotalPrice, totalPrice.String()),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
			sdk.NewAttribute(types.AttributeKeyIssuer, listing.Issuer),
		),
	)
	k.Logger(ctx).Info("settlement executed",
		"id", id, "buyer", buyer.String(), "asset", listing.Denom,
		"amount", amount.String(), "total_price", totalPrice.String(), "fee", fee.String())
	return id, totalPrice, fee, nil
}
