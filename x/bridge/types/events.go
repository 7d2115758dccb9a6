package types

// Event types for the bridge module
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeDeposit            = "bridge_deposit"
	EventTypeClaimed            = "bridge_claimed"
	EventTypeClaimExpired       = "bridge_claim_expired"
	EventTypeSettled            = "bridge_settled"
	EventTypeEvidenceAttested   = "bridge_evidence_attested"
	EventTypeAttestationQueued  = "bridge_attestation_queued"
	EventTypeComputationQueued  = "bridge_computation_queued"
	EventTypeConfigUpdated      = "bridge_config_updated"
)

// Event attribute keys for the bridge module
const (
	AttributeKeyRequestID    = "request_id"
	AttributeKeyPayer        = "payer"
	AttributeKeyDenom        = "denom"
	AttributeKeyAmount       = "amount"
	AttributeKeyFee          = "fee"
	AttributeKeySolver       = "solver"
	AttributeKeyBond         = "bond"
	AttributeKeyDeadline     = "deadline"
	AttributeKeySlashed      = "slashed"
	AttributeKeyRefund       = "refund"
	AttributeKeyPayout       = "payout"
	AttributeKeyJobID        = "job_id"
	AttributeKeyJobKind      = "job_kind"
	AttributeKeyNonce        = "nonce"
	AttributeKeyDestTxHash   = "dest_tx_hash"
	AttributeKeyEvidenceHash = "evidence_hash"
	AttributeKeyOwner        = "owner"
	AttributeKeyTimestamp    = "timestamp"
)
