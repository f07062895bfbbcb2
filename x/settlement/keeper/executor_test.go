package keeper_test

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/stretchr/testify/require"

	guardkeeper "github.com/keel-chain/keel/x/guard/keeper"
	guardtypes "github.com/keel-chain/keel/x/guard/types"
	"github.com/keel-chain/keel/x/settlement/types"
)

func instructionPayload(t *testing.T, m *market, amount int64) []byte {
	payload, err := json.Marshal(types.SettlementInstruction{
		AssetDenom:  "urwagold",
		Amount:      math.NewInt(amount),
		QuoteExpiry: m.quoteExpiry(),
		AuthTag:     types.AuthTagDirect,
	})
	require.NoError(t, err)
	return payload
}

// Full strict-custody path: bind a model, register a delegate with an
// attestation key, then drive a settlement through the guard.
func TestExecuteVerifiedAction_Settles(t *testing.T) {
	m := setupMarket(t)
	f := m.f
	delegate := testAddr()
	attKey := secp256k1.GenPrivKey()

	modelSum := sha256.Sum256([]byte("strategy-v1"))
	require.NoError(t, f.Guard.RegisterStrategy(f.Ctx, m.buyer, hex.EncodeToString(modelSum[:])))
	require.NoError(t, f.Guard.RegisterDelegate(f.Ctx, m.buyer, delegate, attKey.PubKey().Bytes()))

	pv := guardtypes.PublicValues{
		ModelHash:  modelSum,
		DataHash:   sha256.Sum256([]byte("market-data")),
		Prediction: 1,
	}
	payload := instructionPayload(t, m, 2)
	nonce := uint64(1)
	attSig, err := attKey.Sign(guardkeeper.AttestationDigest(payload, nonce))
	require.NoError(t, err)

	err = f.Guard.ExecuteVerifiedAction(
		f.Ctx, delegate, m.buyer, payload, nonce,
		attSig, guardkeeper.FixtureProof(guardtypes.DefaultProgramID), pv.Encode(),
	)
	require.NoError(t, err)

	// The settlement executed under the agent's account.
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, m.buyer, "urwagold").Amount.Equal(math.NewInt(2)))
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, m.buyer, types.DefaultPaymentDenom).Amount.Equal(math.NewInt(98_000_000)))

	passport, err := f.Registry.GetPassport(f.Ctx, m.buyer)
	require.NoError(t, err)
	require.Equal(t, uint64(1), passport.SettlementCount)

	// The consumed nonce blocks a replay of the same instruction.
	err = f.Guard.ExecuteVerifiedAction(
		f.Ctx, delegate, m.buyer, payload, nonce,
		attSig, guardkeeper.FixtureProof(guardtypes.DefaultProgramID), pv.Encode(),
	)
	require.ErrorIs(t, err, guardtypes.ErrNonceConsumed)
}

func TestExecuteAction_MalformedPayload(t *testing.T) {
	m := setupMarket(t)
	f := m.f

	err := f.Settlement.ExecuteAction(f.Ctx, m.buyer, []byte("junk"))
	require.ErrorIs(t, err, types.ErrInvalidActionPayload)

	payload, marshalErr := json.Marshal(types.SettlementInstruction{
		AssetDenom:  "urwagold",
		Amount:      math.ZeroInt(),
		QuoteExpiry: m.quoteExpiry(),
	})
	require.NoError(t, marshalErr)
	err = f.Settlement.ExecuteAction(f.Ctx, m.buyer, payload)
	require.ErrorIs(t, err, types.ErrInvalidActionPayload)
}

func TestExecuteAction_ExpiredInstruction(t *testing.T) {
	m := setupMarket(t)
	f := m.f

	payload, err := json.Marshal(types.SettlementInstruction{
		AssetDenom:  "urwagold",
		Amount:      math.NewInt(1),
		QuoteExpiry: f.Ctx.BlockTime().Unix() - 1,
		AuthTag:     types.AuthTagDirect,
	})
	require.NoError(t, err)
	require.ErrorIs(t, f.Settlement.ExecuteAction(f.Ctx, m.buyer, payload), types.ErrQuoteExpired)
}

func TestExecuteAction_UnknownAuthTag(t *testing.T) {
	m := setupMarket(t)
	f := m.f

	payload, err := json.Marshal(types.SettlementInstruction{
		AssetDenom:  "urwagold",
		Amount:      math.NewInt(1),
		QuoteExpiry: m.quoteExpiry(),
		AuthTag:     0xFF,
	})
	require.NoError(t, err)
	require.ErrorIs(t, f.Settlement.ExecuteAction(f.Ctx, m.buyer, payload), types.ErrUnknownAuthorizationTag)
}

func TestExecuteAction_DirectSettlement(t *testing.T) {
	m := setupMarket(t)
	f := m.f

	// The executor path skips the guard, so an unbound agent settles on
	// the instruction alone.
	require.NoError(t, f.Settlement.ExecuteAction(f.Ctx, m.buyer, instructionPayload(t, m, 1)))
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, m.buyer, "urwagold").Amount.Equal(math.NewInt(1)))
}
