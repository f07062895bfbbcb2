package types

const (
	// ModuleName defines the module name
	ModuleName = "credit"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for credit
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// BpsDenominator is the basis-point denominator used for rates and ratios.
const BpsDenominator = 10_000

// SecondsPerYear is the accrual year used by the simple-interest formula.
const SecondsPerYear = 31_536_000
