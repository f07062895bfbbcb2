package types

// settlement module event types
const (
	EventTypeSettlement      = "settlement"
	EventTypeSwapSettlement  = "swap_settlement"
	EventTypeAssetListed     = "asset_listed"
	EventTypeListingUpdated  = "listing_updated"
	EventTypeAssetDelisted   = "asset_delisted"
	EventTypeInventoryRestocked = "inventory_restocked"
	EventTypePaused          = "settlement_paused"
	EventTypeUnpaused        = "settlement_unpaused"

	AttributeKeySettlementID = "settlement_id"
	AttributeKeyBuyer        = "buyer"
	AttributeKeyAssetDenom   = "asset_denom"
	AttributeKeyAssetIn      = "asset_in"
	AttributeKeyAssetOut     = "asset_out"
	AttributeKeyAmount       = "amount"
	AttributeKeyAmountOut    = "amount_out"
	AttributeKeyTotalPrice   = "total_price"
	AttributeKeyFee          = "fee"
	AttributeKeyIssuer       = "issuer"
	AttributeKeyTreasury     = "treasury"
	AttributeKeyAuthMethod   = "auth_method"
)
