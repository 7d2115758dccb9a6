package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// MaxBps is the basis-point denominator for fee and slash fractions.
	MaxBps = 10_000

	// ClientPubkeyLen is the byte length of the depositor's ephemeral x25519 key.
	ClientPubkeyLen = 32

	// NonceLen is the byte length of the correlation nonce.
	NonceLen = 16

	// CiphertextWordLen is the byte length of one encrypted destination word.
	// The computation service only accepts fixed-width encrypted integers,
	// so the destination address is split across four words.
	CiphertextWordLen = 32

	// DestCiphertextWords is the number of encrypted destination words.
	DestCiphertextWords = 4
)

// BridgeConfig is the singleton module configuration. The owner doubles
// as the trusted relayer and the slash collector, as in the EVM flow.
type BridgeConfig struct {
	Owner           string `json:"owner"`
	FeeBps          uint32 `json:"fee_bps"`
	MinFee          uint64 `json:"min_fee"`
	MaxFee          uint64 `json:"max_fee"`
	ClaimWindowSecs int64  `json:"claim_window_secs"`
	MinSolverBond   uint64 `json:"min_solver_bond"`
	SlashBps        uint32 `json:"slash_bps"`
	BondDenom       string `json:"bond_denom"`
}

// Validate checks the config bounds.
func (c BridgeConfig) Validate() error {
	if _, err := sdk.AccAddressFromBech32(c.Owner); err != nil {
		return ErrInvalidAddress.Wrapf("config owner: %v", err)
	}
	if c.FeeBps > MaxBps {
		return ErrInvalidConfig.Wrapf("fee_bps %d exceeds %d", c.FeeBps, MaxBps)
	}
	if c.SlashBps > MaxBps {
		return ErrInvalidConfig.Wrapf("slash_bps %d exceeds %d", c.SlashBps, MaxBps)
	}
	if c.ClaimWindowSecs <= 0 {
		return ErrInvalidConfig.Wrap("claim_window_secs must be positive")
	}
	if err := sdk.ValidateDenom(c.BondDenom); err != nil {
		return ErrInvalidConfig.Wrapf("bond_denom: %v", err)
	}
	return nil
}

// BridgeRequest is one deposit and its claim lifecycle, keyed by
// (payer, request_id). Once Finalized is set the record is terminal and
// is never reused for a new claim or deposit.
type BridgeRequest struct {
	RequestId  uint64 `json:"request_id"`
	Payer      string `json:"payer"`
	AssetDenom string `json:"asset_denom"`

	AmountLocked uint64 `json:"amount_locked"`
	FeeLocked    uint64 `json:"fee_locked"`
	CreatedAt    int64  `json:"created_at"`

	Claimed       bool   `json:"claimed"`
	Solver        string `json:"solver,omitempty"`
	ClaimDeadline int64  `json:"claim_deadline,omitempty"`
	BondAmount    uint64 `json:"bond_amount,omitempty"`

	Finalized bool `json:"finalized"`

	// Confidential material persisted for the reseal path.
	ClientPubkey []byte `json:"client_pubkey"`
	Nonce        []byte `json:"nonce"`
	DestCt0      []byte `json:"dest_ct_0"`
	DestCt1      []byte `json:"dest_ct_1"`
	DestCt2      []byte `json:"dest_ct_2"`
	DestCt3      []byte `json:"dest_ct_3"`
}

// Validate checks structural consistency of a stored request.
func (r BridgeRequest) Validate() error {
	if _, err := sdk.AccAddressFromBech32(r.Payer); err != nil {
		return ErrInvalidAddress.Wrapf("request payer: %v", err)
	}
	if err := sdk.ValidateDenom(r.AssetDenom); err != nil {
		return ErrInvalidDenom.Wrapf("request %d: %v", r.RequestId, err)
	}
	// Settlement scrubs the confidential material, so finalized records
	// may carry empty fields; live records must carry full-width ones.
	if !r.Finalized || len(r.ClientPubkey) > 0 || len(r.Nonce) > 0 {
		if len(r.ClientPubkey) != ClientPubkeyLen {
			return fmt.Errorf("request %d: client pubkey must be %d bytes", r.RequestId, ClientPubkeyLen)
		}
		if len(r.Nonce) != NonceLen {
			return fmt.Errorf("request %d: nonce must be %d bytes", r.RequestId, NonceLen)
		}
		for i, ct := range [][]byte{r.DestCt0, r.DestCt1, r.DestCt2, r.DestCt3} {
			if len(ct) != CiphertextWordLen {
				return fmt.Errorf("request %d: ciphertext word %d must be %d bytes", r.RequestId, i, CiphertextWordLen)
			}
		}
	}
	if r.Finalized {
		if r.Claimed || r.BondAmount != 0 || r.Solver != "" {
			return fmt.Errorf("request %d: finalized request retains claim state", r.RequestId)
		}
	}
	if r.Claimed {
		if _, err := sdk.AccAddressFromBech32(r.Solver); err != nil {
			return ErrInvalidAddress.Wrapf("request %d solver: %v", r.RequestId, err)
		}
		if r.BondAmount == 0 {
			return fmt.Errorf("request %d: claimed request has zero bond", r.RequestId)
		}
	} else if r.Solver != "" || r.BondAmount != 0 || r.ClaimDeadline != 0 {
		return fmt.Errorf("request %d: open request retains claim state", r.RequestId)
	}
	return nil
}

// Computation job kinds. Plan-payout jobs carry a callback; reseal jobs
// are fire-and-forget and their output is fetched by the authorized
// solver through the computation service's own side channel.
const (
	JobKindPlanPayout = "plan_payout"
	JobKindReseal     = "reseal_destination"
)

// Computation job statuses.
const (
	JobStatusPending  = "pending"
	JobStatusResolved = "resolved"
)

// ComputationJob is one outstanding request against the external
// confidential-computation service, keyed by a caller-chosen job id.
// A job resolves at most once; it may also never resolve at all.
type ComputationJob struct {
	JobId        uint64   `json:"job_id"`
	Kind         string   `json:"kind"`
	Requester    string   `json:"requester"`
	ClientPubkey []byte   `json:"client_pubkey"`
	Nonce        []byte   `json:"nonce"`
	Ciphertexts  [][]byte `json:"ciphertexts"`
	HasCallback  bool     `json:"has_callback"`
	Status       string   `json:"status"`
	QueuedAt     int64    `json:"queued_at"`
}

// Validate checks structural consistency of a stored job.
func (j ComputationJob) Validate() error {
	if j.Kind != JobKindPlanPayout && j.Kind != JobKindReseal {
		return fmt.Errorf("job %d: unknown kind %q", j.JobId, j.Kind)
	}
	if j.Status != JobStatusPending && j.Status != JobStatusResolved {
		return fmt.Errorf("job %d: unknown status %q", j.JobId, j.Status)
	}
	if _, err := sdk.AccAddressFromBech32(j.Requester); err != nil {
		return ErrInvalidAddress.Wrapf("job %d requester: %v", j.JobId, err)
	}
	if len(j.ClientPubkey) != ClientPubkeyLen {
		return fmt.Errorf("job %d: client pubkey must be %d bytes", j.JobId, ClientPubkeyLen)
	}
	if len(j.Nonce) != NonceLen {
		return fmt.Errorf("job %d: nonce must be %d bytes", j.JobId, NonceLen)
	}
	for i, ct := range j.Ciphertexts {
		if len(ct) != CiphertextWordLen {
			return fmt.Errorf("job %d: ciphertext word %d must be %d bytes", j.JobId, i, CiphertextWordLen)
		}
	}
	return nil
}
