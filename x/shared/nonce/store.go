// Package nonce provides a shared consumed-nonce membership store for
// replay protection. A nonce may be consumed exactly once; consumed nonces
// are recorded append-only and never removed, so a replayed authorization
// is always detectable for the life of the ledger.
package nonce

import (
	"encoding/binary"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ErrorProvider lets each module wrap nonce failures in its own sentinel
// errors while sharing the membership logic.
type ErrorProvider interface {
	// ConsumedNonceError returns an error for a nonce that was already used
	ConsumedNonceError(msg string) error
	// InvalidNonceError returns an error for a structurally invalid nonce
	InvalidNonceError(msg string) error
}

// Store tracks consumed nonces for one owning module. Keys are scoped by
// the owner address so two agents may use the same numeric nonce without
// colliding.
type Store struct {
	storeKey      storetypes.StoreKey
	errorProvider ErrorProvider
	prefix        []byte
}

// NewStore creates a consumed-nonce store over the module's KVStore.
func NewStore(storeKey storetypes.StoreKey, errorProvider ErrorProvider, prefix []byte) *Store {
	return &Store{
		storeKey:      storeKey,
		errorProvider: errorProvider,
		prefix:        prefix,
	}
}

func encodeNonce(n uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, n)
	return bz
}

func (s *Store) key(owner sdk.AccAddress, nonce uint64) []byte {
	key := make([]byte, 0, len(s.prefix)+len(owner)+1+8)
	key = append(key, s.prefix...)
	key = append(key, owner.Bytes()...)
	key = append(key, '/')
	key = append(key, encodeNonce(nonce)...)
	return key
}

// IsConsumed reports whether the nonce was already used by the owner.
func (s *Store) IsConsumed(ctx sdk.Context, owner sdk.AccAddress, nonce uint64) bool {
	return ctx.KVStore(s.storeKey).Has(s.key(owner, nonce))
}

// Consume marks the nonce as used, recording the block time it was
// consumed at. Consuming an already-used nonce is an error; callers must
// only invoke Consume alongside successful execution of the guarded
// action, so a failed attempt never burns a legitimate nonce.
func (s *Store) Consume(ctx sdk.Context, owner sdk.AccAddress, nonce uint64) error {
	if owner.Empty() {
		return s.errorProvider.InvalidNonceError("nonce owner address is empty")
	}
	store := ctx.KVStore(s.storeKey)
	key := s.key(owner, nonce)
	if store.Has(key) {
		return s.errorProvider.ConsumedNonceError("nonce already consumed")
	}

	consumedAt := make([]byte, 8)
	binary.BigEndian.PutUint64(consumedAt, uint64(ctx.BlockTime().Unix()))
	store.Set(key, consumedAt)
	return nil
}

// ConsumedAt returns the unix time a nonce was consumed, or false if it
// never was.
func (s *Store) ConsumedAt(ctx sdk.Context, owner sdk.AccAddress, nonce uint64) (int64, bool) {
	bz := ctx.KVStore(s.storeKey).Get(s.key(owner, nonce))
	if len(bz) != 8 {
		return 0, false
	}
	return int64(binary.BigEndian.Uint64(bz)), true
}

// IterateConsumed walks every consumed nonce for an owner in ascending
// order until the callback returns stop.
func (s *Store) IterateConsumed(ctx sdk.Context, owner sdk.AccAddress, cb func(nonce uint64, consumedAt int64) (stop bool)) {
	prefix := make([]byte, 0, len(s.prefix)+len(owner)+1)
	prefix = append(prefix, s.prefix...)
	prefix = append(prefix, owner.Bytes()...)
	prefix = append(prefix, '/')

	iterator := storetypes.KVStorePrefixIterator(ctx.KVStore(s.storeKey), prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		if len(key) < 8 {
			continue
		}
		nonce := binary.BigEndian.Uint64(key[len(key)-8:])
		var consumedAt int64
		if bz := iterator.Value(); len(bz) == 8 {
			consumedAt = int64(binary.BigEndian.Uint64(bz))
		}
		if cb(nonce, consumedAt) {
			break
		}
	}
}
