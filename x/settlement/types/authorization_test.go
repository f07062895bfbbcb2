package types_test

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/keel-chain/keel/x/settlement/types"
)

func payer() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

func TestDecodeFundsAuthorization_Direct(t *testing.T) {
	auth, err := types.DecodeFundsAuthorization(types.AuthTagDirect, nil)
	require.NoError(t, err)
	require.Equal(t, types.AuthTagDirect, auth.Method())
}

func TestDecodeFundsAuthorization_TaggedVariants(t *testing.T) {
	payload, err := json.Marshal(types.DelegatedSigAuthorization{
		PubKey:    []byte{0x01},
		Signature: []byte{0x02},
	})
	require.NoError(t, err)
	auth, err := types.DecodeFundsAuthorization(types.AuthTagDelegatedSig, payload)
	require.NoError(t, err)
	require.Equal(t, types.AuthTagDelegatedSig, auth.Method())

	payload, err = json.Marshal(types.PermitAuthorization{Deadline: 99})
	require.NoError(t, err)
	auth, err = types.DecodeFundsAuthorization(types.AuthTagPermit, payload)
	require.NoError(t, err)
	require.Equal(t, types.AuthTagPermit, auth.Method())
	require.Equal(t, int64(99), auth.(types.PermitAuthorization).Deadline)

	payload, err = json.Marshal(types.TimeWindowedAuthorization{NotBefore: 1, NotAfter: 2, Nonce: 3})
	require.NoError(t, err)
	auth, err = types.DecodeFundsAuthorization(types.AuthTagTimeWindowed, payload)
	require.NoError(t, err)
	require.Equal(t, types.AuthTagTimeWindowed, auth.Method())
	require.Equal(t, uint64(3), auth.(types.TimeWindowedAuthorization).Nonce)
}

func TestDecodeFundsAuthorization_UnknownTag(t *testing.T) {
	_, err := types.DecodeFundsAuthorization(0xFF, nil)
	require.ErrorIs(t, err, types.ErrUnknownAuthorizationTag)
}

func TestDecodeFundsAuthorization_MalformedPayload(t *testing.T) {
	for _, tag := range []byte{
		types.AuthTagDelegatedSig,
		types.AuthTagPermit,
		types.AuthTagTimeWindowed,
	} {
		_, err := types.DecodeFundsAuthorization(tag, []byte("{not json"))
		require.ErrorIs(t, err, types.ErrInvalidAuthorization)
	}
}

func TestAuthDigests_BindEveryField(t *testing.T) {
	p := payer()
	amount := math.NewInt(1_000_000)

	base := types.DelegatedAuthDigest(p, amount, types.ModuleName)
	require.Len(t, base, 32)
	require.NotEqual(t, base, types.DelegatedAuthDigest(p, math.NewInt(1_000_001), types.ModuleName))
	require.NotEqual(t, base, types.DelegatedAuthDigest(payer(), amount, types.ModuleName))
	require.NotEqual(t, base, types.DelegatedAuthDigest(p, amount, "elsewhere"))

	permit := types.PermitAuthDigest(p, amount, types.ModuleName, 100)
	require.NotEqual(t, base, permit)
	require.NotEqual(t, permit, types.PermitAuthDigest(p, amount, types.ModuleName, 101))

	windowed := types.WindowedAuthDigest(p, amount, types.ModuleName, 10, 20, 1)
	require.NotEqual(t, windowed, types.WindowedAuthDigest(p, amount, types.ModuleName, 11, 20, 1))
	require.NotEqual(t, windowed, types.WindowedAuthDigest(p, amount, types.ModuleName, 10, 21, 1))
	require.NotEqual(t, windowed, types.WindowedAuthDigest(p, amount, types.ModuleName, 10, 20, 2))
}
