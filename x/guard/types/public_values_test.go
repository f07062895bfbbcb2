package types_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keel-chain/keel/x/guard/types"
)

func TestDecodePublicValues_RoundTrip(t *testing.T) {
	pv := types.PublicValues{
		ModelHash:  sha256.Sum256([]byte("model")),
		DataHash:   sha256.Sum256([]byte("data")),
		Prediction: 42,
	}

	decoded, err := types.DecodePublicValues(pv.Encode())
	require.NoError(t, err)
	require.Equal(t, pv, decoded)
}

func TestDecodePublicValues_NegativePrediction(t *testing.T) {
	pv := types.PublicValues{Prediction: -7}

	decoded, err := types.DecodePublicValues(pv.Encode())
	require.NoError(t, err)
	require.Equal(t, int64(-7), decoded.Prediction)
}

func TestDecodePublicValues_FailsClosed(t *testing.T) {
	for _, n := range []int{0, 1, 64, 71, 73, 144} {
		_, err := types.DecodePublicValues(make([]byte, n))
		require.ErrorIs(t, err, types.ErrMalformedPublicValues, "length %d", n)
	}
}

func TestPublicValues_MatchesModel(t *testing.T) {
	modelHash := sha256.Sum256([]byte("model"))
	pv := types.PublicValues{ModelHash: modelHash}

	require.True(t, pv.MatchesModel(modelHash[:]))

	other := sha256.Sum256([]byte("other"))
	require.False(t, pv.MatchesModel(other[:]))
	require.False(t, pv.MatchesModel(modelHash[:31]))
}

func TestValidateModelHash(t *testing.T) {
	good := sha256.Sum256([]byte("model"))
	require.NoError(t, types.ValidateModelHash(hex.EncodeToString(good[:])))

	require.Error(t, types.ValidateModelHash("not-hex"))
	require.Error(t, types.ValidateModelHash(hex.EncodeToString(good[:16])))
	require.Error(t, types.ValidateModelHash(hex.EncodeToString(make([]byte, 32))))
}
