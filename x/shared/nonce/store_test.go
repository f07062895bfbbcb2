package nonce_test

import (
	"errors"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/keel-chain/keel/x/shared/nonce"
)

var (
	errConsumed = errors.New("consumed")
	errInvalid  = errors.New("invalid")
)

type testErrors struct{}

func (testErrors) ConsumedNonceError(msg string) error { return errConsumed }
func (testErrors) InvalidNonceError(msg string) error  { return errInvalid }

func setupStore(t *testing.T) (*nonce.Store, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey("nonce_test")

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: time.Unix(1_700_000_000, 0)}, false, log.NewNopLogger())
	return nonce.NewStore(storeKey, testErrors{}, []byte{0x07}), ctx
}

func testOwner() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

func TestStore_ConsumeOnce(t *testing.T) {
	s, ctx := setupStore(t)
	owner := testOwner()

	require.False(t, s.IsConsumed(ctx, owner, 1))
	require.NoError(t, s.Consume(ctx, owner, 1))
	require.True(t, s.IsConsumed(ctx, owner, 1))

	require.ErrorIs(t, s.Consume(ctx, owner, 1), errConsumed)
}

func TestStore_OwnersDoNotCollide(t *testing.T) {
	s, ctx := setupStore(t)
	a := testOwner()
	b := testOwner()

	require.NoError(t, s.Consume(ctx, a, 42))
	require.False(t, s.IsConsumed(ctx, b, 42))
	require.NoError(t, s.Consume(ctx, b, 42))
}

func TestStore_EmptyOwnerRejected(t *testing.T) {
	s, ctx := setupStore(t)
	require.ErrorIs(t, s.Consume(ctx, sdk.AccAddress{}, 1), errInvalid)
}

func TestStore_ConsumedAt(t *testing.T) {
	s, ctx := setupStore(t)
	owner := testOwner()

	_, ok := s.ConsumedAt(ctx, owner, 9)
	require.False(t, ok)

	require.NoError(t, s.Consume(ctx, owner, 9))
	at, ok := s.ConsumedAt(ctx, owner, 9)
	require.True(t, ok)
	require.Equal(t, ctx.BlockTime().Unix(), at)
}

func TestStore_IterateConsumedAscending(t *testing.T) {
	s, ctx := setupStore(t)
	owner := testOwner()

	for _, n := range []uint64{5, 1, 3} {
		require.NoError(t, s.Consume(ctx, owner, n))
	}

	var got []uint64
	s.IterateConsumed(ctx, owner, func(n uint64, _ int64) bool {
		got = append(got, n)
		return false
	})
	require.Equal(t, []uint64{1, 3, 5}, got)

	// Early stop.
	got = got[:0]
	s.IterateConsumed(ctx, owner, func(n uint64, _ int64) bool {
		got = append(got, n)
		return true
	})
	require.Equal(t, []uint64{1}, got)
}
