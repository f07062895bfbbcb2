package keeper

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/guard/types"
)

// AttestationDigest is the message the custody attestation signs:
// sha256(actionPayload || bigEndian64(nonce)).
func AttestationDigest(actionPayload []byte, nonce uint64) []byte {
	nonceBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nonceBz, nonce)
	digest := sha256.Sum256(append(append([]byte{}, actionPayload...), nonceBz...))
	return digest[:]
}

// ExecuteVerifiedAction runs the strict custody flow. Checks happen in a
// fixed order and touch no state until all of them pass:
//
//  1. the caller must be the agent's registered custody delegate,
//  2. the nonce must be fresh,
//  3. the attestation signature must verify over the payload and nonce,
//  4. the inference proof must verify against the bound model.
//
// Only then is the nonce consumed and the payload handed to the
// settlement executor. A failed attempt never burns the nonce.
func (k *Keeper) ExecuteVerifiedAction(
	ctx sdk.Context,
	caller, agent sdk.AccAddress,
	actionPayload []byte,
	nonce uint64,
	attestationSig, proof, publicValues []byte,
) error {
	binding, found := k.GetBinding(ctx, agent)
	if !found {
		return types.ErrBindingNotFound.Wrapf("agent %s", agent)
	}
	if binding.DelegateAddress == "" || binding.DelegateAddress != caller.String() {
		return types.ErrNotDelegate.Wrapf("caller %s", caller)
	}

	if k.nonces.IsConsumed(ctx, agent, nonce) {
		return types.ErrNonceConsumed.Wrapf("nonce %d", nonce)
	}

	if len(binding.AttestationPubKey) == 0 {
		return types.ErrNoAttestationKey.Wrapf("agent %s", agent)
	}
	pubKey := secp256k1.PubKey{Key: binding.AttestationPubKey}
	if !pubKey.VerifySignature(AttestationDigest(actionPayload, nonce), attestationSig) {
		return types.ErrInvalidAttestation
	}

	params := k.GetParams(ctx)
	ok, err := k.verifier.Verify(ctx, params.ProgramID, publicValues, proof)
	if err != nil {
		k.metrics.ProofFailures.Inc()
		return types.ErrProofVerificationFailed.Wrap(err.Error())
	}
	if !ok {
		k.metrics.ProofFailures.Inc()
		return types.ErrProofVerificationFailed
	}
	pv, err := types.DecodePublicValues(publicValues)
	if err != nil {
		return err
	}
	modelHash, err := binding.ModelHashBytes()
	if err != nil {
		return err
	}
	if !pv.MatchesModel(modelHash) {
		return types.ErrUnapprovedModel.Wrapf(
			"proof model %x does not match binding %s", pv.ModelHash, binding.ModelHash)
	}

	if k.executor == nil {
		return types.ErrExecutorNotSet
	}

	// All checks passed. Consume the nonce and execute atomically; if the
	// executor fails the whole tx reverts, nonce consumption included.
	if err := k.nonces.Consume(ctx, agent, nonce); err != nil {
		return err
	}
	if err := k.executor.ExecuteAction(ctx, agent, actionPayload); err != nil {
		return err
	}

	k.metrics.VerifiedActionsExecuted.Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeVerifiedActionExecuted,
			sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
			sdk.NewAttribute(types.AttributeKeyDelegate, caller.String()),
			sdk.NewAttribute(types.AttributeKeyNonce, fmt.Sprintf("%d", nonce)),
		),
	)
	k.Logger(ctx).Info("verified action executed",
		"agent", agent.String(), "delegate", caller.String(), "nonce", nonce)
	return nil
}
