package types

// guard module event types
const (
	EventTypeStrategyRegistered = "strategy_registered"
	EventTypeDelegateRegistered = "delegate_registered"
	EventTypeInferenceVerified  = "inference_verified"
	EventTypeSettlementAuthorized = "settlement_authorized"
	EventTypeVerifiedActionExecuted = "verified_action_executed"
	EventTypeVerifyingKeyRegistered = "verifying_key_registered"

	AttributeKeyAgent             = "agent"
	AttributeKeyDelegate          = "delegate"
	AttributeKeyModelHash         = "model_hash"
	AttributeKeyPrediction        = "prediction"
	AttributeKeyInferenceCount    = "inference_count"
	AttributeKeyIntelligenceScore = "intelligence_score"
	AttributeKeyCredit            = "credit"
	AttributeKeyProgramID         = "program_id"
	AttributeKeyNonce             = "nonce"
)
