package keeper

import (
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/shared/nonce"

	"github.com/keel-chain/keel/x/guard/types"
)

// Keeper manages strategy bindings and proof-gated execution.
type Keeper struct {
	storeKey storetypes.StoreKey
	cdc      codec.BinaryCodec

	verifier types.ProofVerifier
	nonces   *nonce.Store

	// executor is wired after construction by the settlement keeper;
	// strict mode fails closed while it is nil.
	executor types.ActionExecutor

	authority string

	metrics *GuardMetrics
}

// nonceErrors adapts the shared nonce store's failures to guard sentinels.
type nonceErrors struct{}

func (nonceErrors) ConsumedNonceError(msg string) error { return types.ErrNonceConsumed.Wrap(msg) }
func (nonceErrors) InvalidNonceError(msg string) error  { return types.ErrInvalidNonce.Wrap(msg) }

// NewKeeper creates a new guard keeper. The verifier is injected so tests
// can substitute a deterministic fixture.
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	verifier types.ProofVerifier,
	authority string,
) *Keeper {
	k := &Keeper{
		storeKey:  storeKey,
		cdc:       cdc,
		verifier:  verifier,
		authority: authority,
		metrics:   GetGuardMetrics(),
	}
	k.nonces = nonce.NewStore(storeKey, nonceErrors{}, ConsumedNoncePrefix)
	return k
}

// SetActionExecutor wires the settlement executor for strict mode.
func (k *Keeper) SetActionExecutor(executor types.ActionExecutor) {
	k.executor = executor
}

// SetProofVerifier replaces the proof verifier. The gnark verifier reads
// verifying keys through the keeper, so wiring happens after construction.
func (k *Keeper) SetProofVerifier(verifier types.ProofVerifier) {
	k.verifier = verifier
}

// GetAuthority returns the module's authority address.
func (k *Keeper) GetAuthority() string {
	return k.authority
}

// Nonces exposes the consumed-nonce store for queries and genesis.
func (k *Keeper) Nonces() *nonce.Store {
	return k.nonces
}

// Logger returns a module-specific logger.
func (k *Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

func (k *Keeper) getStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}
