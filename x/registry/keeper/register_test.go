package keeper_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keel-chain/keel/testutil/keeper"
	"github.com/keel-chain/keel/x/registry/types"
)

func testAddr() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

func TestRegister_HappyPath(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()

	leaf := types.DeriveIdentityCommitment(agent)
	require.NoError(t, k.SetMembershipRoot(ctx, leaf[:]))
	require.NoError(t, k.Register(ctx, agent, hex.EncodeToString(leaf[:]), types.MembershipProof{}))

	passport, err := k.GetPassport(ctx, agent)
	require.NoError(t, err)
	require.Equal(t, agent.String(), passport.Agent)
	require.Equal(t, types.DefaultInitialReputation, passport.Reputation)
	require.True(t, passport.Active)
	require.True(t, passport.LifetimeVolume.IsZero())
	require.Zero(t, passport.SettlementCount)
}

func TestRegister_CommitmentMustMatchAddress(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()
	other := testAddr()

	// Publish the root for the agent's own leaf, then submit the other
	// account's commitment.
	leaf := types.DeriveIdentityCommitment(agent)
	otherLeaf := types.DeriveIdentityCommitment(other)
	require.NoError(t, k.SetMembershipRoot(ctx, leaf[:]))

	err := k.Register(ctx, agent, hex.EncodeToString(otherLeaf[:]), types.MembershipProof{})
	require.ErrorIs(t, err, types.ErrInvalidCommitment)
	require.False(t, k.HasPassport(ctx, agent))
}

func TestRegister_MalformedCommitment(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()

	leaf := types.DeriveIdentityCommitment(agent)
	require.NoError(t, k.SetMembershipRoot(ctx, leaf[:]))

	for _, commitment := range []string{"", "zz", hex.EncodeToString(leaf[:16])} {
		err := k.Register(ctx, agent, commitment, types.MembershipProof{})
		require.ErrorIs(t, err, types.ErrInvalidCommitment)
	}
}

func TestRegister_RejectsDuplicate(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()

	keepertest.RegisterTestAgent(t, k, ctx, agent)

	leaf := types.DeriveIdentityCommitment(agent)
	err := k.Register(ctx, agent, hex.EncodeToString(leaf[:]), types.MembershipProof{})
	require.ErrorIs(t, err, types.ErrAlreadyRegistered)
}

func TestRegister_DeactivatedStaysDeactivated(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()

	keepertest.RegisterTestAgent(t, k, ctx, agent)
	require.NoError(t, k.Deactivate(ctx, agent))

	leaf := types.DeriveIdentityCommitment(agent)
	err := k.Register(ctx, agent, hex.EncodeToString(leaf[:]), types.MembershipProof{})
	require.ErrorIs(t, err, types.ErrAgentNotActive)
}

func TestRegister_NoRootPublished(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agent := testAddr()

	leaf := types.DeriveIdentityCommitment(agent)
	err := k.Register(ctx, agent, hex.EncodeToString(leaf[:]), types.MembershipProof{})
	require.ErrorIs(t, err, types.ErrInvalidRoot)
}

func TestRegister_TwoLeafTree(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	agentA := testAddr()
	agentB := testAddr()

	leafA := types.DeriveIdentityCommitment(agentA)
	leafB := types.DeriveIdentityCommitment(agentB)
	root := sortedPairHash(leafA[:], leafB[:])
	require.NoError(t, k.SetMembershipRoot(ctx, root))

	proofA := types.MembershipProof{Siblings: [][]byte{leafB[:]}}
	require.NoError(t, k.Register(ctx, agentA, hex.EncodeToString(leafA[:]), proofA))

	proofB := types.MembershipProof{Siblings: [][]byte{leafA[:]}}
	require.NoError(t, k.Register(ctx, agentB, hex.EncodeToString(leafB[:]), proofB))

	// A proof against the wrong sibling fails.
	agentC := testAddr()
	leafC := types.DeriveIdentityCommitment(agentC)
	err := k.Register(ctx, agentC, hex.EncodeToString(leafC[:]), proofA)
	require.ErrorIs(t, err, types.ErrInvalidMembershipProof)
}

func sortedPairHash(a, b []byte) []byte {
	if string(a) > string(b) {
		a, b = b, a
	}
	h := sha256.New()
	h.Write(a)
	h.Write(b)
	return h.Sum(nil)
}

func TestSetMembershipRoot_RejectsBadLength(t *testing.T) {
	k, ctx := keepertest.RegistryKeeper(t)
	require.ErrorIs(t, k.SetMembershipRoot(ctx, []byte("short")), types.ErrInvalidRoot)
}
