package keeper

import (
	"encoding/json"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/settlement/types"
)

// GetListing returns the listing for an asset denom and whether it exists.
func (k *Keeper) GetListing(ctx sdk.Context, denom string) (types.AssetListing, bool) {
	bz := k.getStore(ctx).Get(ListingKey(denom))
	if bz == nil {
		return types.AssetListing{}, false
	}
	var listing types.AssetListing
	if err := json.Unmarshal(bz, &listing); err != nil {
		k.Logger(ctx).Error("corrupt asset listing", "denom", denom, "error", err)
		return types.AssetListing{}, false
	}
	return listing, true
}

// SetListing persists a listing.
func (k *Keeper) SetListing(ctx sdk.Context, listing types.AssetListing) error {
	if err := listing.Validate(); err != nil {
		return err
	}
	bz, err := json.Marshal(listing)
	if err != nil {
		return types.ErrMarshalFailed.Wrapf("asset listing: %s", err)
	}
	k.getStore(ctx).Set(ListingKey(listing.Denom), bz)
	return nil
}

// IterateListings calls cb for each listing until cb returns true.
func (k *Keeper) IterateListings(ctx sdk.Context, cb func(types.AssetListing) bool) {
	store := k.getStore(ctx)
	iterator := store.Iterator(ListingKeyPrefix, storetypes.PrefixEndBytes(ListingKeyPrefix))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var listing types.AssetListing
		if err := json.Unmarshal(iterator.Value(), &listing); err != nil {
			continue
		}
		if cb(listing) {
			break
		}
	}
}

// GetAllListings returns every stored listing.
func (k *Keeper) GetAllListings(ctx sdk.Context) []types.AssetListing {
	var listings []types.AssetListing
	k.IterateListings(ctx, func(listing types.AssetListing) bool {
		listings = append(listings, listing)
		return false
	})
	return listings
}

// ListAsset creates a new active listing. Re-listing an existing denom
// is an error; use UpdateListing instead.
func (k *Keeper) ListAsset(ctx sdk.Context, listing types.AssetListing) error {
	if _, found := k.GetListing(ctx, listing.Denom); found {
		return types.ErrListingExists.Wrapf("denom %s", listing.Denom)
	}
	listing.Active = true
	if err := k.SetListing(ctx, listing); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAssetListed,
			sdk.NewAttribute(types.AttributeKeyAssetDenom, listing.Denom),
			sdk.NewAttribute(types.AttributeKeyIssuer, listing.Issuer),
		),
	)
	k.Logger(ctx).Info("asset listed", "denom", listing.Denom, "issuer", listing.Issuer)
	return nil
}

// UpdateListing replaces an existing listing.
func (k *Keeper) UpdateListing(ctx sdk.Context, listing types.AssetListing) error {
	if _, found := k.GetListing(ctx, listing.Denom); !found {
		return types.ErrInvalidAsset.Wrapf("denom %s", listing.Denom)
	}
	if err := k.SetListing(ctx, listing); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeListingUpdated,
			sdk.NewAttribute(types.AttributeKeyAssetDenom, listing.Denom),
		),
	)
	return nil
}

// DelistAsset deactivates a listing. The record stays for history.
func (k *Keeper) DelistAsset(ctx sdk.Context, denom string) error {
	listing, found := k.GetListing(ctx, denom)
	if !found {
		return types.ErrInvalidAsset.Wrapf("denom %s", denom)
	}
	listing.Active = false
	if err := k.SetListing(ctx, listing); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAssetDelisted,
			sdk.NewAttribute(types.AttributeKeyAssetDenom, denom),
		),
	)
	return nil
}

// activeListing returns the listing only when it exists and is active.
func (k *Keeper) activeListing(ctx sdk.Context, denom string) (types.AssetListing, error) {
	listing, found := k.GetListing(ctx, denom)
	if !found || !listing.Active {
		return types.AssetListing{}, types.ErrInvalidAsset.Wrapf("denom %s", denom)
	}
	return listing, nil
}

// RestockInventory moves asset units from the authority account into the
// module inventory for later delivery.
func (k *Keeper) RestockInventory(ctx sdk.Context, from sdk.AccAddress, denom string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount
	}
	if _, err := k.activeListing(ctx, denom); err != nil {
		return err
	}
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, from, types.ModuleName, types.Coin(denom, amount)); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeInventoryRestocked,
			sdk.NewAttribute(types.AttributeKeyAssetDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// Inventory returns the module account's holdings of an asset denom.
func (k *Keeper) Inventory(ctx sdk.Context, denom string) math.Int {
	return k.bankKeeper.GetBalance(ctx, k.ModuleAddress(), denom).Amount
}
