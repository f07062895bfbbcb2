package keeper_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keel-chain/keel/testutil/keeper"
	"github.com/keel-chain/keel/x/guard/types"
)

func testAddr() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

func testModelHash(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}

func TestRegisterStrategy(t *testing.T) {
	k, ctx := keepertest.GuardKeeper(t)
	agent := testAddr()

	require.NoError(t, k.RegisterStrategy(ctx, agent, testModelHash("m1")))

	binding, found := k.GetBinding(ctx, agent)
	require.True(t, found)
	require.Equal(t, agent.String(), binding.Agent)
	require.Equal(t, testModelHash("m1"), binding.ModelHash)
	require.Zero(t, binding.InferenceCount)
	require.Zero(t, binding.IntelligenceScore)
}

func TestRegisterStrategy_RejectsBadHashes(t *testing.T) {
	k, ctx := keepertest.GuardKeeper(t)
	agent := testAddr()

	for _, hash := range []string{
		"",
		"zzzz",
		hex.EncodeToString(make([]byte, 16)),
		hex.EncodeToString(make([]byte, 32)),
	} {
		err := k.RegisterStrategy(ctx, agent, hash)
		require.ErrorIs(t, err, types.ErrInvalidModelHash, "hash %q", hash)
	}
}

func TestRegisterStrategy_RebindKeepsCounters(t *testing.T) {
	k, ctx := keepertest.GuardKeeper(t)
	agent := testAddr()

	require.NoError(t, k.RegisterStrategy(ctx, agent, testModelHash("m1")))

	binding, _ := k.GetBinding(ctx, agent)
	binding.InferenceCount = 7
	binding.IntelligenceScore = 70
	require.NoError(t, k.SetBinding(ctx, binding))

	require.NoError(t, k.RegisterStrategy(ctx, agent, testModelHash("m2")))

	binding, found := k.GetBinding(ctx, agent)
	require.True(t, found)
	require.Equal(t, testModelHash("m2"), binding.ModelHash)
	require.Equal(t, uint64(7), binding.InferenceCount)
	require.Equal(t, uint64(70), binding.IntelligenceScore)
}

func TestRegisterDelegate(t *testing.T) {
	k, ctx := keepertest.GuardKeeper(t)
	agent := testAddr()
	delegate := testAddr()
	pubKey := secp256k1.GenPrivKey().PubKey().Bytes()

	err := k.RegisterDelegate(ctx, agent, delegate, pubKey)
	require.ErrorIs(t, err, types.ErrBindingNotFound)

	require.NoError(t, k.RegisterStrategy(ctx, agent, testModelHash("m1")))

	err = k.RegisterDelegate(ctx, agent, delegate, nil)
	require.ErrorIs(t, err, types.ErrNoAttestationKey)

	require.NoError(t, k.RegisterDelegate(ctx, agent, delegate, pubKey))

	binding, found := k.GetBinding(ctx, agent)
	require.True(t, found)
	require.Equal(t, delegate.String(), binding.DelegateAddress)
	require.Equal(t, pubKey, binding.AttestationPubKey)
}
