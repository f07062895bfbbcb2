package keeper

// KVStore key prefixes for the settlement module
var (
	ListingKeyPrefix    = []byte{0x01}
	SettlementCounterKey = []byte{0x02}
	PausedKey           = []byte{0x03}
	ParamsKey           = []byte{0x04}
	ConsumedNoncePrefix = []byte{0x05}
)

// ListingKey returns the store key for an asset listing.
func ListingKey(denom string) []byte {
	return append(ListingKeyPrefix, []byte(denom)...)
}
