package types

// Event types for the registry module
const (
	EventTypeRegister          = "agent_registered"
	EventTypeSettlementRecord  = "settlement_recorded"
	EventTypeSlash             = "agent_slashed"
	EventTypeDeactivate        = "agent_deactivated"
	EventTypeReactivate        = "agent_reactivated"
	EventTypeMembershipRoot    = "membership_root_updated"
	EventTypeCallerWhitelisted = "caller_whitelisted"
	EventTypeCallerRemoved     = "caller_removed"
)

// Event attribute keys for the registry module
const (
	AttributeKeyAgent       = "agent"
	AttributeKeyCommitment  = "identity_commitment"
	AttributeKeyReputation  = "reputation"
	AttributeKeyVolume      = "volume"
	AttributeKeyCount       = "settlement_count"
	AttributeKeyPenalty     = "penalty"
	AttributeKeyReason      = "reason"
	AttributeKeyCaller      = "caller"
	AttributeKeyRoot        = "root"
	AttributeKeyVerifiedTil = "verified_until"
)
