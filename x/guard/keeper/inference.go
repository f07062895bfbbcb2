package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/guard/types"
)

// VerifyInference checks a baseline-mode inference proof against the
// agent's strategy binding. On success the binding's counters advance and
// the informational proof-of-intelligence credit is returned. Disbursing
// that credit is the credit module's concern, not this one's.
func (k *Keeper) VerifyInference(ctx sdk.Context, agent sdk.AccAddress, proof, publicValues []byte) (types.StrategyBinding, math.Int, error) {
	binding, found := k.GetBinding(ctx, agent)
	if !found {
		return types.StrategyBinding{}, math.Int{}, types.ErrBindingNotFound.Wrapf("agent %s", agent)
	}

	params := k.GetParams(ctx)
	ok, err := k.verifier.Verify(ctx, params.ProgramID, publicValues, proof)
	if err != nil {
		k.metrics.ProofFailures.Inc()
		return types.StrategyBinding{}, math.Int{}, types.ErrProofVerificationFailed.Wrap(err.Error())
	}
	if !ok {
		k.metrics.ProofFailures.Inc()
		return types.StrategyBinding{}, math.Int{}, types.ErrProofVerificationFailed
	}

	pv, err := types.DecodePublicValues(publicValues)
	if err != nil {
		return types.StrategyBinding{}, math.Int{}, err
	}
	modelHash, err := binding.ModelHashBytes()
	if err != nil {
		return types.StrategyBinding{}, math.Int{}, err
	}
	if !pv.MatchesModel(modelHash) {
		return types.StrategyBinding{}, math.Int{}, types.ErrUnapprovedModel.Wrapf(
			"proof model %x does not match binding %s", pv.ModelHash, binding.ModelHash)
	}
	if pv.Prediction <= 0 {
		return types.StrategyBinding{}, math.Int{}, types.ErrNoBuySignal.Wrapf("prediction %d", pv.Prediction)
	}

	binding.InferenceCount++
	binding.IntelligenceScore += params.ScoreReward
	if err := k.SetBinding(ctx, binding); err != nil {
		return types.StrategyBinding{}, math.Int{}, err
	}

	credit, err := intelligenceCredit(params.BaseCredit, binding.IntelligenceScore)
	if err != nil {
		return types.StrategyBinding{}, math.Int{}, err
	}

	k.metrics.InferencesVerified.Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeInferenceVerified,
			sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
			sdk.NewAttribute(types.AttributeKeyPrediction, fmt.Sprintf("%d", pv.Prediction)),
			sdk.NewAttribute(types.AttributeKeyInferenceCount, fmt.Sprintf("%d", binding.InferenceCount)),
			sdk.NewAttribute(types.AttributeKeyIntelligenceScore, fmt.Sprintf("%d", binding.IntelligenceScore)),
			sdk.NewAttribute(types.AttributeKeyCredit, credit.String()),
		),
	)
	k.Logger(ctx).Info("inference verified",
		"agent", agent.String(), "count", binding.InferenceCount, "score", binding.IntelligenceScore)
	return binding, credit, nil
}

// AuthorizeSettlement verifies a compliance proof for a settlement. The
// proof is checked against the listing's circuit program; when the agent
// carries a strategy binding the model hash must also match. The buy
// signal check does not apply to compliance circuits.
func (k *Keeper) AuthorizeSettlement(ctx sdk.Context, agent sdk.AccAddress, circuitID string, proof, publicValues []byte) error {
	ok, err := k.verifier.Verify(ctx, circuitID, publicValues, proof)
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
	if binding, found := k.GetBinding(ctx, agent); found {
		modelHash, err := binding.ModelHashBytes()
		if err != nil {
			return err
		}
		if !pv.MatchesModel(modelHash) {
			return types.ErrUnapprovedModel.Wrapf(
				"proof model %x does not match binding %s", pv.ModelHash, binding.ModelHash)
		}
	}

	k.metrics.SettlementsAuthorized.Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSettlementAuthorized,
			sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
			sdk.NewAttribute(types.AttributeKeyProgramID, circuitID),
		),
	)
	return nil
}

// intelligenceCredit computes baseCredit * (100 + score) / 100.
func intelligenceCredit(baseCredit math.Int, score uint64) (math.Int, error) {
	multiplier, err := SafeAddUint64(100, score)
	if err != nil {
		return math.Int{}, err
	}
	return SafeMulDiv(baseCredit, math.NewIntFromUint64(multiplier), math.NewInt(100))
}
