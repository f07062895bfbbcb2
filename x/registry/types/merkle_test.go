package types_test

import (
	"crypto/sha256"
	"testing"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/keel-chain/keel/x/registry/types"
)

func pairHash(a, b []byte) []byte {
	if string(a) > string(b) {
		a, b = b, a
	}
	h := sha256.New()
	h.Write(a)
	h.Write(b)
	return h.Sum(nil)
}

func TestVerifyMembershipProof_SingleLeaf(t *testing.T) {
	agent := sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
	leaf := types.DeriveIdentityCommitment(agent)

	require.True(t, types.VerifyMembershipProof(leaf[:], leaf, types.MembershipProof{}))
	require.False(t, types.VerifyMembershipProof(make([]byte, 32), leaf, types.MembershipProof{}))
}

func TestVerifyMembershipProof_FourLeafTree(t *testing.T) {
	leaves := make([][32]byte, 4)
	for i := range leaves {
		addr := sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
		leaves[i] = types.DeriveIdentityCommitment(addr)
	}

	n01 := pairHash(leaves[0][:], leaves[1][:])
	n23 := pairHash(leaves[2][:], leaves[3][:])
	root := pairHash(n01, n23)

	proof := types.MembershipProof{Siblings: [][]byte{leaves[1][:], n23}}
	require.True(t, types.VerifyMembershipProof(root, leaves[0], proof))

	// Sibling order within a pair does not matter; path order does.
	badOrder := types.MembershipProof{Siblings: [][]byte{n23, leaves[1][:]}}
	require.False(t, types.VerifyMembershipProof(root, leaves[0], badOrder))

	// Wrong leaf for a valid path fails.
	require.False(t, types.VerifyMembershipProof(root, leaves[2], proof))
}

func TestMembershipProof_Validate(t *testing.T) {
	require.NoError(t, types.MembershipProof{}.Validate())
	require.NoError(t, types.MembershipProof{Siblings: [][]byte{make([]byte, 32)}}.Validate())
	require.Error(t, types.MembershipProof{Siblings: [][]byte{make([]byte, 31)}}.Validate())
}

func TestVerifyMembershipProof_RejectsBadRootLength(t *testing.T) {
	agent := sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
	leaf := types.DeriveIdentityCommitment(agent)
	require.False(t, types.VerifyMembershipProof(leaf[:31], leaf, types.MembershipProof{}))
}
