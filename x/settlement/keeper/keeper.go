package keeper

import (
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/keel-chain/keel/x/shared/nonce"

	"github.com/keel-chain/keel/x/settlement/types"
)

// Keeper routes atomic settlements between buyers, issuers and the
// treasury. The module account is a conduit for payment funds and a
// custodian only for asset inventory.
type Keeper struct {
	storeKey storetypes.StoreKey
	cdc      codec.BinaryCodec

	bankKeeper     types.BankKeeper
	registryKeeper types.RegistryKeeper
	guardKeeper    types.GuardKeeper
	oracleKeeper   types.OracleKeeper

	nonces *nonce.Store

	authority string

	metrics *SettlementMetrics
}

// nonceErrors adapts shared nonce failures to settlement sentinels.
type nonceErrors struct{}

func (nonceErrors) ConsumedNonceError(msg string) error { return types.ErrNonceConsumed.Wrap(msg) }
func (nonceErrors) InvalidNonceError(msg string) error  { return types.ErrInvalidNonce.Wrap(msg) }

// NewKeeper creates a new settlement keeper. Passing a nil oracle wires
// the default listing-table oracle.
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	registryKeeper types.RegistryKeeper,
	guardKeeper types.GuardKeeper,
	oracleKeeper types.OracleKeeper,
	authority string,
) *Keeper {
	k := &Keeper{
		storeKey:       storeKey,
		cdc:            cdc,
		bankKeeper:     bankKeeper,
		registryKeeper: registryKeeper,
		guardKeeper:    guardKeeper,
		oracleKeeper:   oracleKeeper,
		authority:      authority,
		metrics:        GetSettlementMetrics(),
	}
	k.nonces = nonce.NewStore(storeKey, nonceErrors{}, ConsumedNoncePrefix)
	if k.oracleKeeper == nil {
		k.oracleKeeper = listingOracle{keeper: k}
	}
	return k
}

// GetAuthority returns the module's authority address.
func (k *Keeper) GetAuthority() string {
	return k.authority
}

// ModuleAddress returns the settlement module account address.
func (k *Keeper) ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// Logger returns a module-specific logger.
func (k *Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

func (k *Keeper) getStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// authEnv builds the capability set funds authorizations execute with.
func (k *Keeper) authEnv(params types.Params) types.AuthEnv {
	return types.AuthEnv{
		Bank:         k.bankKeeper,
		Nonces:       k.nonces,
		PaymentDenom: params.PaymentDenom,
		ModuleName:   types.ModuleName,
	}
}
