package keeper

import (
	"bytes"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/guard/types"
)

// GetVerifyingKey returns the raw verifying key registered for a program.
func (k *Keeper) GetVerifyingKey(ctx sdk.Context, programID string) ([]byte, bool) {
	bz := k.getStore(ctx).Get(VerifyingKeyKey(programID))
	if bz == nil {
		return nil, false
	}
	return bz, true
}

// SetVerifyingKey installs the verifying key for a program id.
func (k *Keeper) SetVerifyingKey(ctx sdk.Context, programID string, keyData []byte) error {
	if programID == "" {
		return types.ErrInvalidParams.Wrap("program id must be set")
	}
	if len(keyData) == 0 {
		return types.ErrInvalidParams.Wrap("verifying key data required")
	}
	k.getStore(ctx).Set(VerifyingKeyKey(programID), keyData)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeVerifyingKeyRegistered,
			sdk.NewAttribute(types.AttributeKeyProgramID, programID),
		),
	)
	return nil
}

// IterateVerifyingKeys walks every registered verifying key.
func (k *Keeper) IterateVerifyingKeys(ctx sdk.Context, cb func(programID string, keyData []byte) bool) {
	store := k.getStore(ctx)
	iterator := store.Iterator(VerifyingKeyPrefix, storetypes.PrefixEndBytes(VerifyingKeyPrefix))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		programID := string(iterator.Key()[len(VerifyingKeyPrefix):])
		if cb(programID, iterator.Value()) {
			break
		}
	}
}

// publicValuesCircuit exposes the 72 public-values bytes as public
// circuit inputs. The verifying key registered per program must have been
// produced for a circuit with this public input shape.
type publicValuesCircuit struct {
	PublicValues [types.PublicValuesLength]frontend.Variable `gnark:",public"`
}

func (circuit *publicValuesCircuit) Define(api frontend.API) error {
	return nil
}

// GnarkVerifier verifies Groth16 proofs over BN254 using verifying keys
// registered in the guard keeper's state. Deserialization failures of
// either key or proof are verification failures.
type GnarkVerifier struct {
	keeper *Keeper
}

// NewGnarkVerifier creates the production proof verifier.
func NewGnarkVerifier(keeper *Keeper) *GnarkVerifier {
	return &GnarkVerifier{keeper: keeper}
}

var _ types.ProofVerifier = (*GnarkVerifier)(nil)

// Verify implements types.ProofVerifier.
func (v *GnarkVerifier) Verify(ctx sdk.Context, programID string, publicValues, proof []byte) (bool, error) {
	vkData, found := v.keeper.GetVerifyingKey(ctx, programID)
	if !found {
		return false, types.ErrProgramNotRegistered.Wrapf("program %s", programID)
	}
	if len(publicValues) != types.PublicValuesLength {
		return false, types.ErrMalformedPublicValues.Wrapf(
			"expected %d bytes, got %d", types.PublicValuesLength, len(publicValues))
	}

	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewReader(vkData)); err != nil {
		return false, types.ErrProofVerificationFailed.Wrapf("verifying key deserialization: %s", err)
	}

	gProof := groth16.NewProof(ecc.BN254)
	if _, err := gProof.ReadFrom(bytes.NewReader(proof)); err != nil {
		return false, types.ErrProofVerificationFailed.Wrapf("proof deserialization: %s", err)
	}

	assignment := &publicValuesCircuit{}
	for i := 0; i < types.PublicValuesLength; i++ {
		assignment.PublicValues[i] = publicValues[i]
	}
	publicWitness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return false, types.ErrProofVerificationFailed.Wrapf("witness construction: %s", err)
	}

	if err := groth16.Verify(gProof, vk, publicWitness); err != nil {
		return false, nil
	}
	return true, nil
}

// FixtureVerifier is a deterministic verifier for tests: a proof passes
// when it equals "ok:" followed by the program id, or when AcceptAll is
// set. It never touches state.
type FixtureVerifier struct {
	AcceptAll bool
}

var _ types.ProofVerifier = (*FixtureVerifier)(nil)

// FixtureProof builds the proof bytes the fixture verifier accepts for a
// program.
func FixtureProof(programID string) []byte {
	return append([]byte("ok:"), []byte(programID)...)
}

// Verify implements types.ProofVerifier.
func (v *FixtureVerifier) Verify(_ sdk.Context, programID string, publicValues, proof []byte) (bool, error) {
	if len(publicValues) != types.PublicValuesLength {
		return false, types.ErrMalformedPublicValues.Wrapf(
			"expected %d bytes, got %d", types.PublicValuesLength, len(publicValues))
	}
	if v.AcceptAll {
		return true, nil
	}
	return bytes.Equal(proof, FixtureProof(programID)), nil
}
