package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/settlement/types"
)

// listingOracle prices swap routes through the listings table: amountOut
// = amountIn × priceIn / priceOut. It is the default oracle when none is
// injected.
type listingOracle struct {
	keeper *Keeper
}

var _ types.OracleKeeper = listingOracle{}

func (o listingOracle) Quote(ctx sdk.Context, amountIn math.Int, route []string) (math.Int, error) {
	if len(route) != 2 {
		return math.Int{}, types.ErrOracleUnavailable.Wrapf("route must have two hops, got %d", len(route))
	}
	in, err := o.keeper.activeListing(ctx, route[0])
	if err != nil {
		return math.Int{}, types.ErrOracleUnavailable.Wrapf("asset in: %s", route[0])
	}
	out, err := o.keeper.activeListing(ctx, route[1])
	if err != nil {
		return math.Int{}, types.ErrOracleUnavailable.Wrapf("asset out: %s", route[1])
	}
	return SafeMulDiv(amountIn, in.PricePerUnit, out.PricePerUnit)
}

// SwapSettle settles one listed asset against another at the oracle
// price. The buyer's asset-in is routed to the asset-out issuer, the fee
// is taken in asset-in, and asset-out inventory is delivered. Slippage
// below the caller's floor aborts before any funds move.
func (k *Keeper) SwapSettle(
	ctx sdk.Context,
	buyer sdk.AccAddress,
	assetIn, assetOut string,
	amountIn, minAmountOut math.Int,
	quoteExpiry int64,
	proof, publicValues []byte,
) (string, math.Int, error) {
	if k.IsPaused(ctx) {
		k.metrics.Failures.WithLabelValues("paused").Inc()
		return "", math.Int{}, types.ErrPaused
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return "", math.Int{}, types.ErrZeroAmount
	}
	if ctx.BlockTime().Unix() > quoteExpiry {
		k.metrics.Failures.WithLabelValues("quote_expired").Inc()
		return "", math.Int{}, types.ErrQuoteExpired.Wrapf("expiry %d", quoteExpiry)
	}
	if _, err := k.activeListing(ctx, assetIn); err != nil {
		return "", math.Int{}, err
	}
	listingOut, err := k.activeListing(ctx, assetOut)
	if err != nil {
		return "", math.Int{}, err
	}

	if err := k.guardKeeper.AuthorizeSettlement(ctx, buyer, listingOut.CircuitID, proof, publicValues); err != nil {
		k.metrics.Failures.WithLabelValues("proof_rejected").Inc()
		return "", math.Int{}, types.ErrInvalidProof.Wrap(err.Error())
	}

	amountOut, err := k.oracleKeeper.Quote(ctx, amountIn, []string{assetIn, assetOut})
	if err != nil {
		return "", math.Int{}, err
	}
	params := k.GetParams(ctx)
	fee, err := SafeMulDiv(amountIn, math.NewIntFromUint64(uint64(params.FeeBps)), math.NewInt(types.BpsDenominator))
	if err != nil {
		return "", math.Int{}, err
	}
	if amountOut.LT(minAmountOut) {
		k.metrics.Failures.WithLabelValues("slippage").Inc()
		return "", math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"out %s below floor %s", amountOut, minAmountOut)
	}
	if fee.IsPositive() && params.Treasury == "" {
		return "", math.Int{}, types.ErrInvalidParams.Wrap("treasury not configured")
	}

	inventory := k.Inventory(ctx, assetOut)
	if inventory.LT(amountOut) {
		k.metrics.Failures.WithLabelValues("inventory").Inc()
		return "", math.Int{}, types.ErrInsufficientInventory.Wrapf(
			"have %s, need %s", inventory, amountOut)
	}

	// Pull asset-in, forward it minus fee to the asset-out issuer, fee to
	// the treasury, and deliver asset-out inventory.
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, buyer, types.ModuleName, types.Coin(assetIn, amountIn)); err != nil {
		return "", math.Int{}, err
	}
	issuer := sdk.MustAccAddressFromBech32(listingOut.Issuer)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, issuer, types.Coin(assetIn, amountIn.Sub(fee))); err != nil {
		return "", math.Int{}, err
	}
	if fee.IsPositive() {
		treasury := sdk.MustAccAddressFromBech32(params.Treasury)
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, treasury, types.Coin(assetIn, fee)); err != nil {
			return "", math.Int{}, err
		}
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, buyer, types.Coin(assetOut, amountOut)); err != nil {
		return "", math.Int{}, err
	}

	// Volume is recorded at the payment value of the input leg.
	listingIn, _ := k.GetListing(ctx, assetIn)
	volume, err := SafeMul(amountIn, listingIn.PricePerUnit)
	if err != nil {
		return "", math.Int{}, err
	}
	if err := k.registryKeeper.RecordSettlement(ctx, k.ModuleAddress(), buyer, volume); err != nil {
		return "", math.Int{}, err
	}

	counter := k.getSettlementCounter(ctx)
	id := settlementID(buyer, assetOut, amountOut, volume, counter, ctx.BlockTime().Unix())
	k.setSettlementCounter(ctx, counter+1)

	k.metrics.SettlementsTotal.Inc()
	k.metrics.SettlementVolume.Add(float64(volume.Int64()))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwapSettlement,
			sdk.NewAttribute(types.AttributeKeySettlementID, id),
			sdk.NewAttribute(types.AttributeKeyBuyer, buyer.String()),
			sdk.NewAttribute(types.AttributeKeyAssetIn, assetIn),
			sdk.NewAttribute(types.AttributeKeyAssetOut, assetOut),
			sdk.NewAttribute(types.AttributeKeyAmount, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
		),
	)
	k.Logger(ctx).Info("swap settlement executed",
		"id", id, "buyer", buyer.String(), "asset_in", assetIn, "asset_out", assetOut,
		"amount_in", amountIn.String(), "amount_out", amountOut.String())
	return id, amountOut, nil
}
