package types

import (
	"bytes"
	"crypto/sha256"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MembershipProof is a Merkle inclusion path from an identity commitment
// leaf up to the published membership root. Siblings are ordered from the
// leaf level upward; pair hashing is order-independent (sorted pairs), so
// no direction bits are carried.
type MembershipProof struct {
	Siblings [][]byte `json:"siblings"`
}

// Validate checks the structural well-formedness of the proof.
func (p MembershipProof) Validate() error {
	for i, sib := range p.Siblings {
		if len(sib) != sha256.Size {
			return ErrInvalidMembershipProof.Wrapf("sibling %d is %d bytes, want %d", i, len(sib), sha256.Size)
		}
	}
	return nil
}

// DeriveIdentityCommitment computes the canonical identity commitment for
// an agent address. Registration requires the submitted commitment to
// equal this value, binding the passport to the signing account.
func DeriveIdentityCommitment(agent sdk.AccAddress) [32]byte {
	return sha256.Sum256(agent.Bytes())
}

// VerifyMembershipProof folds the sibling path over the leaf and compares
// the result against the expected root. Pairs are hashed in sorted order.
func VerifyMembershipProof(root []byte, leaf [32]byte, proof MembershipProof) bool {
	if len(root) != sha256.Size {
		return false
	}
	node := leaf[:]
	for _, sib := range proof.Siblings {
		if len(sib) != sha256.Size {
			return false
		}
		node = hashPair(node, sib)
	}
	return bytes.Equal(node, root)
}

func hashPair(a, b []byte) []byte {
	if bytes.Compare(a, b) > 0 {
		a, b = b, a
	}
	h := sha256.New()
	h.Write(a)
	h.Write(b)
	return h.Sum(nil)
}
