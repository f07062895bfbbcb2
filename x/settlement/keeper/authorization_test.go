package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/stretchr/testify/require"

	"github.com/keel-chain/keel/x/settlement/types"
)

func TestSettle_DelegatedSigAuthorization(t *testing.T) {
	m := setupMarket(t)
	f := m.f

	// The digest covers the payer, the full payment amount and the
	// settlement module as recipient.
	totalPrice := math.NewInt(2_000_000)
	sig, err := m.buyerKey.Sign(types.DelegatedAuthDigest(m.buyer, totalPrice, types.ModuleName))
	require.NoError(t, err)

	auth := types.DelegatedSigAuthorization{
		PubKey:    m.buyerKey.PubKey().Bytes(),
		Signature: sig,
	}
	_, got, _, err := f.Settlement.Settle(
		f.Ctx, m.buyer, "urwagold", math.NewInt(2), m.quoteExpiry(),
		complianceProof(), complianceValues(), auth,
	)
	require.NoError(t, err)
	require.True(t, got.Equal(totalPrice))
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, m.buyer, "urwagold").Amount.Equal(math.NewInt(2)))
}

func TestSettle_DelegatedSigAuthorization_AmountMismatch(t *testing.T) {
	m := setupMarket(t)
	f := m.f

	// Signature over one unit cannot authorize a two unit pull.
	sig, err := m.buyerKey.Sign(types.DelegatedAuthDigest(m.buyer, math.NewInt(1_000_000), types.ModuleName))
	require.NoError(t, err)

	auth := types.DelegatedSigAuthorization{
		PubKey:    m.buyerKey.PubKey().Bytes(),
		Signature: sig,
	}
	_, _, _, err = f.Settlement.Settle(
		f.Ctx, m.buyer, "urwagold", math.NewInt(2), m.quoteExpiry(),
		complianceProof(), complianceValues(), auth,
	)
	require.ErrorIs(t, err, types.ErrInvalidAuthorization)
}

func TestSettle_DelegatedSigAuthorization_ForeignKey(t *testing.T) {
	m := setupMarket(t)
	f := m.f

	// A valid signature by a key that is not the payer's is rejected
	// before signature verification even runs.
	otherKey := secp256k1.GenPrivKey()
	totalPrice := math.NewInt(1_000_000)
	sig, err := otherKey.Sign(types.DelegatedAuthDigest(m.buyer, totalPrice, types.ModuleName))
	require.NoError(t, err)

	auth := types.DelegatedSigAuthorization{
		PubKey:    otherKey.PubKey().Bytes(),
		Signature: sig,
	}
	_, _, _, err = f.Settlement.Settle(
		f.Ctx, m.buyer, "urwagold", math.NewInt(1), m.quoteExpiry(),
		complianceProof(), complianceValues(), auth,
	)
	require.ErrorIs(t, err, types.ErrInvalidAuthorization)
}

func TestSettle_PermitAuthorization(t *testing.T) {
	m := setupMarket(t)
	f := m.f

	totalPrice := math.NewInt(1_000_000)
	deadline := f.Ctx.BlockTime().Unix() + 120
	sig, err := m.buyerKey.Sign(types.PermitAuthDigest(m.buyer, totalPrice, types.ModuleName, deadline))
	require.NoError(t, err)

	auth := types.PermitAuthorization{
		PubKey:    m.buyerKey.PubKey().Bytes(),
		Signature: sig,
		Deadline:  deadline,
	}
	_, _, _, err = f.Settlement.Settle(
		f.Ctx, m.buyer, "urwagold", math.NewInt(1), m.quoteExpiry(),
		complianceProof(), complianceValues(), auth,
	)
	require.NoError(t, err)
}

func TestSettle_PermitAuthorization_Expired(t *testing.T) {
	m := setupMarket(t)
	f := m.f

	totalPrice := math.NewInt(1_000_000)
	deadline := f.Ctx.BlockTime().Unix() - 1
	sig, err := m.buyerKey.Sign(types.PermitAuthDigest(m.buyer, totalPrice, types.ModuleName, deadline))
	require.NoError(t, err)

	auth := types.PermitAuthorization{
		PubKey:    m.buyerKey.PubKey().Bytes(),
		Signature: sig,
		Deadline:  deadline,
	}
	_, _, _, err = f.Settlement.Settle(
		f.Ctx, m.buyer, "urwagold", math.NewInt(1), m.quoteExpiry(),
		complianceProof(), complianceValues(), auth,
	)
	require.ErrorIs(t, err, types.ErrAuthorizationExpired)

	balance := f.BankKeeper.GetBalance(f.Ctx, m.buyer, types.DefaultPaymentDenom).Amount
	require.True(t, balance.Equal(math.NewInt(100_000_000)))
}

func TestSettle_TimeWindowedAuthorization(t *testing.T) {
	m := setupMarket(t)
	f := m.f

	totalPrice := math.NewInt(1_000_000)
	now := f.Ctx.BlockTime().Unix()
	notBefore, notAfter := now-10, now+120
	nonce := uint64(7)
	digest := types.WindowedAuthDigest(m.buyer, totalPrice, types.ModuleName, notBefore, notAfter, nonce)
	sig, err := m.buyerKey.Sign(digest)
	require.NoError(t, err)

	auth := types.TimeWindowedAuthorization{
		PubKey:    m.buyerKey.PubKey().Bytes(),
		Signature: sig,
		NotBefore: notBefore,
		NotAfter:  notAfter,
		Nonce:     nonce,
	}
	_, _, _, err = f.Settlement.Settle(
		f.Ctx, m.buyer, "urwagold", math.NewInt(1), m.quoteExpiry(),
		complianceProof(), complianceValues(), auth,
	)
	require.NoError(t, err)

	// The nonce burned on success blocks a byte-identical replay.
	_, _, _, err = f.Settlement.Settle(
		f.Ctx, m.buyer, "urwagold", math.NewInt(1), m.quoteExpiry(),
		complianceProof(), complianceValues(), auth,
	)
	require.ErrorIs(t, err, types.ErrNonceConsumed)
}

func TestSettle_TimeWindowedAuthorization_OutsideWindow(t *testing.T) {
	m := setupMarket(t)
	f := m.f

	totalPrice := math.NewInt(1_000_000)
	now := f.Ctx.BlockTime().Unix()
	notBefore, notAfter := now+60, now+120
	nonce := uint64(1)
	sig, err := m.buyerKey.Sign(types.WindowedAuthDigest(m.buyer, totalPrice, types.ModuleName, notBefore, notAfter, nonce))
	require.NoError(t, err)

	auth := types.TimeWindowedAuthorization{
		PubKey:    m.buyerKey.PubKey().Bytes(),
		Signature: sig,
		NotBefore: notBefore,
		NotAfter:  notAfter,
		Nonce:     nonce,
	}
	_, _, _, err = f.Settlement.Settle(
		f.Ctx, m.buyer, "urwagold", math.NewInt(1), m.quoteExpiry(),
		complianceProof(), complianceValues(), auth,
	)
	require.ErrorIs(t, err, types.ErrAuthorizationExpired)

	// An unused window leaves the nonce intact for the real attempt.
	f.AdvanceTime(90 * time.Second)
	_, _, _, err = f.Settlement.Settle(
		f.Ctx, m.buyer, "urwagold", math.NewInt(1), m.quoteExpiry(),
		complianceProof(), complianceValues(), auth,
	)
	require.NoError(t, err)
}
