package types

import (
	"bytes"
	"encoding/binary"
)

// PublicValues is the decoded public-values blob committed to by an
// inference proof.
type PublicValues struct {
	ModelHash  [32]byte
	DataHash   [32]byte
	Prediction int64
}

// DecodePublicValues parses the fixed 72-byte layout: model hash, data
// hash, then the prediction as a big-endian signed 64-bit integer. Any
// other length fails closed.
func DecodePublicValues(bz []byte) (PublicValues, error) {
	if len(bz) != PublicValuesLength {
		return PublicValues{}, ErrMalformedPublicValues.Wrapf(
			"expected %d bytes, got %d", PublicValuesLength, len(bz))
	}
	var pv PublicValues
	copy(pv.ModelHash[:], bz[0:32])
	copy(pv.DataHash[:], bz[32:64])
	pv.Prediction = int64(binary.BigEndian.Uint64(bz[64:72]))
	return pv, nil
}

// Encode serializes the public values back into the fixed layout.
func (pv PublicValues) Encode() []byte {
	bz := make([]byte, PublicValuesLength)
	copy(bz[0:32], pv.ModelHash[:])
	copy(bz[32:64], pv.DataHash[:])
	binary.BigEndian.PutUint64(bz[64:72], uint64(pv.Prediction))
	return bz
}

// MatchesModel reports whether the proof's model hash equals the binding's.
func (pv PublicValues) MatchesModel(modelHash []byte) bool {
	return bytes.Equal(pv.ModelHash[:], modelHash)
}
