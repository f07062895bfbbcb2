package types

const (
	// ModuleName defines the module name
	ModuleName = "settlement"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for settlement
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// BpsDenominator is the basis-point denominator for fee math.
const BpsDenominator = 10_000
