package types

const (
	// ModuleName defines the module name
	ModuleName = "guard"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for guard
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// ModelHashLength is the required length of a registered model hash.
const ModelHashLength = 32

// PublicValuesLength is the exact byte length of a well-formed public
// values blob: model hash (32) plus data hash (32) plus prediction (8).
const PublicValuesLength = 72
