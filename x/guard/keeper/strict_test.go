package keeper_test

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keel-chain/keel/testutil/keeper"
	"github.com/keel-chain/keel/x/guard/keeper"
	"github.com/keel-chain/keel/x/guard/types"
)

func TestExecuteVerifiedAction_OrderOfChecks(t *testing.T) {
	k, ctx := keepertest.GuardKeeper(t)
	agent := testAddr()
	delegate := testAddr()
	attKey := secp256k1.GenPrivKey()

	payload := []byte(`{"action":"buy"}`)
	proof := keeper.FixtureProof(types.DefaultProgramID)
	pv := boundValues("m1", 1)
	sig, err := attKey.Sign(keeper.AttestationDigest(payload, 1))
	require.NoError(t, err)

	// No binding.
	err = k.ExecuteVerifiedAction(ctx, delegate, agent, payload, 1, sig, proof, pv)
	require.ErrorIs(t, err, types.ErrBindingNotFound)

	require.NoError(t, k.RegisterStrategy(ctx, agent, testModelHash("m1")))

	// Binding exists but no delegate is registered.
	err = k.ExecuteVerifiedAction(ctx, delegate, agent, payload, 1, sig, proof, pv)
	require.ErrorIs(t, err, types.ErrNotDelegate)

	require.NoError(t, k.RegisterDelegate(ctx, agent, delegate, attKey.PubKey().Bytes()))

	// Wrong caller.
	err = k.ExecuteVerifiedAction(ctx, testAddr(), agent, payload, 1, sig, proof, pv)
	require.ErrorIs(t, err, types.ErrNotDelegate)

	// Wrong attestation signature.
	badSig, err := attKey.Sign(keeper.AttestationDigest(payload, 2))
	require.NoError(t, err)
	err = k.ExecuteVerifiedAction(ctx, delegate, agent, payload, 1, badSig, proof, pv)
	require.ErrorIs(t, err, types.ErrInvalidAttestation)

	// Signature from a different key.
	otherSig, err := secp256k1.GenPrivKey().Sign(keeper.AttestationDigest(payload, 1))
	require.NoError(t, err)
	err = k.ExecuteVerifiedAction(ctx, delegate, agent, payload, 1, otherSig, proof, pv)
	require.ErrorIs(t, err, types.ErrInvalidAttestation)

	// Bad proof.
	err = k.ExecuteVerifiedAction(ctx, delegate, agent, payload, 1, sig, []byte("bogus"), pv)
	require.ErrorIs(t, err, types.ErrProofVerificationFailed)

	// All checks pass but this keeper has no executor wired.
	err = k.ExecuteVerifiedAction(ctx, delegate, agent, payload, 1, sig, proof, pv)
	require.ErrorIs(t, err, types.ErrExecutorNotSet)

	// None of the failed attempts burned the nonce.
	require.False(t, k.Nonces().IsConsumed(ctx, agent, 1))
}

func TestExecuteVerifiedAction_ModelMismatch(t *testing.T) {
	k, ctx := keepertest.GuardKeeper(t)
	agent := testAddr()
	delegate := testAddr()
	attKey := secp256k1.GenPrivKey()

	require.NoError(t, k.RegisterStrategy(ctx, agent, testModelHash("m1")))
	require.NoError(t, k.RegisterDelegate(ctx, agent, delegate, attKey.PubKey().Bytes()))

	payload := []byte(`{"action":"buy"}`)
	proof := keeper.FixtureProof(types.DefaultProgramID)
	sig, err := attKey.Sign(keeper.AttestationDigest(payload, 1))
	require.NoError(t, err)

	err = k.ExecuteVerifiedAction(ctx, delegate, agent, payload, 1, sig, proof, boundValues("other", 1))
	require.ErrorIs(t, err, types.ErrUnapprovedModel)
}

func TestExecuteVerifiedAction_NonceReplay(t *testing.T) {
	k, ctx := keepertest.GuardKeeper(t)
	agent := testAddr()
	delegate := testAddr()
	attKey := secp256k1.GenPrivKey()

	require.NoError(t, k.RegisterStrategy(ctx, agent, testModelHash("m1")))
	require.NoError(t, k.RegisterDelegate(ctx, agent, delegate, attKey.PubKey().Bytes()))

	// Consume the nonce out of band to simulate a prior execution.
	require.NoError(t, k.Nonces().Consume(ctx, agent, 1))

	payload := []byte(`{"action":"buy"}`)
	proof := keeper.FixtureProof(types.DefaultProgramID)
	sig, err := attKey.Sign(keeper.AttestationDigest(payload, 1))
	require.NoError(t, err)

	err = k.ExecuteVerifiedAction(ctx, delegate, agent, payload, 1, sig, proof, boundValues("m1", 1))
	require.ErrorIs(t, err, types.ErrNonceConsumed)
}

func TestAttestationDigest_BindsPayloadAndNonce(t *testing.T) {
	d1 := keeper.AttestationDigest([]byte("payload"), 1)
	d2 := keeper.AttestationDigest([]byte("payload"), 2)
	d3 := keeper.AttestationDigest([]byte("other"), 1)

	require.Len(t, d1, 32)
	require.NotEqual(t, d1, d2)
	require.NotEqual(t, d1, d3)
}
