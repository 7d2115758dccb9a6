package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgInitConfig          = "init_config"
	TypeMsgUpdateConfig        = "update_config"
	TypeMsgDeposit             = "deposit"
	TypeMsgClaim               = "claim"
	TypeMsgReleaseExpiredClaim = "release_expired_claim"
	TypeMsgSettle              = "settle"
	TypeMsgResolveComputation  = "resolve_computation"
)

var (
	_ sdk.Msg = &MsgInitConfig{}
	_ sdk.Msg = &MsgUpdateConfig{}
	_ sdk.Msg = &MsgDeposit{}
	_ sdk.Msg = &MsgClaim{}
	_ sdk.Msg = &MsgReleaseExpiredClaim{}
	_ sdk.Msg = &MsgSettle{}
	_ sdk.Msg = &MsgResolveComputation{}
)

// MsgInitConfig creates the singleton bridge config. The signer becomes
// the owner (and thereby the relayer and slash collector).
type MsgInitConfig struct {
	Authority       string `json:"authority"`
	FeeBps          uint32 `json:"fee_bps"`
	MinFee          uint64 `json:"min_fee"`
	MaxFee          uint64 `json:"max_fee"`
	ClaimWindowSecs int64  `json:"claim_window_secs"`
	MinSolverBond   uint64 `json:"min_solver_bond"`
	SlashBps        uint32 `json:"slash_bps"`
	BondDenom       string `json:"bond_denom"`
}

type MsgInitConfigResponse struct{}

func (msg *MsgInitConfig) Reset()         { *msg = MsgInitConfig{} }
func (msg *MsgInitConfig) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgInitConfig) ProtoMessage()      {}

// GetSigners returns the expected signers for MsgInitConfig
func (msg *MsgInitConfig) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgInitConfig
func (msg *MsgInitConfig) ValidateBasic() error {
	cfg := BridgeConfig{
		Owner:           msg.Authority,
		FeeBps:          msg.FeeBps,
		MinFee:          msg.MinFee,
		MaxFee:          msg.MaxFee,
		ClaimWindowSecs: msg.ClaimWindowSecs,
		MinSolverBond:   msg.MinSolverBond,
		SlashBps:        msg.SlashBps,
		BondDenom:       msg.BondDenom,
	}
	return cfg.Validate()
}

// MsgUpdateConfig mutates the bridge config. Nil fields are left
// unchanged; the merged config is re-validated as a whole.
type MsgUpdateConfig struct {
	Authority       string  `json:"authority"`
	FeeBps          *uint32 `json:"fee_bps,omitempty"`
	MinFee          *uint64 `json:"min_fee,omitempty"`
	MaxFee          *uint64 `json:"max_fee,omitempty"`
	ClaimWindowSecs *int64  `json:"claim_window_secs,omitempty"`
	MinSolverBond   *uint64 `json:"min_solver_bond,omitempty"`
	SlashBps        *uint32 `json:"slash_bps,omitempty"`
}

type MsgUpdateConfigResponse struct{}

func (msg *MsgUpdateConfig) Reset()         { *msg = MsgUpdateConfig{} }
func (msg *MsgUpdateConfig) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgUpdateConfig) ProtoMessage()      {}

// GetSigners returns the expected signers for MsgUpdateConfig
func (msg *MsgUpdateConfig) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgUpdateConfig
func (msg *MsgUpdateConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %v", err)
	}
	if msg.FeeBps != nil && *msg.FeeBps > MaxBps {
		return ErrInvalidConfig.Wrapf("fee_bps %d exceeds %d", *msg.FeeBps, MaxBps)
	}
	if msg.SlashBps != nil && *msg.SlashBps > MaxBps {
		return ErrInvalidConfig.Wrapf("slash_bps %d exceeds %d", *msg.SlashBps, MaxBps)
	}
	if msg.ClaimWindowSecs != nil && *msg.ClaimWindowSecs <= 0 {
		return ErrInvalidConfig.Wrap("claim_window_secs must be positive")
	}
	return nil
}

// MsgDeposit locks funds for a bridge request and queues the
// plan-payout computation over the encrypted destination material.
type MsgDeposit struct {
	Payer        string `json:"payer"`
	RequestId    uint64 `json:"request_id"`
	AssetDenom   string `json:"asset_denom"`
	Amount       uint64 `json:"amount"`
	JobId        uint64 `json:"job_id"`
	ClientPubkey []byte `json:"client_pubkey"`
	Nonce        []byte `json:"nonce"`
	DestCt0      []byte `json:"dest_ct_0"`
	DestCt1      []byte `json:"dest_ct_1"`
	DestCt2      []byte `json:"dest_ct_2"`
	DestCt3      []byte `json:"dest_ct_3"`
}

type MsgDepositResponse struct {
	RequestId uint64 `json:"request_id"`
}

func (msg *MsgDeposit) Reset()         { *msg = MsgDeposit{} }
func (msg *MsgDeposit) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgDeposit) ProtoMessage()      {}

// GetSigners returns the expected signers for MsgDeposit
func (msg *MsgDeposit) GetSigners() []sdk.AccAddress {
	payer, _ := sdk.AccAddressFromBech32(msg.Payer)
	return []sdk.AccAddress{payer}
}

// ValidateBasic performs basic validation of MsgDeposit
func (msg *MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Payer); err != nil {
		return ErrInvalidAddress.Wrapf("payer: %v", err)
	}
	if err := sdk.ValidateDenom(msg.AssetDenom); err != nil {
		return ErrInvalidDenom.Wrap(err.Error())
	}
	if msg.Amount == 0 {
		return ErrZeroAmount
	}
	if len(msg.ClientPubkey) != ClientPubkeyLen {
		return fmt.Errorf("client pubkey must be %d bytes", ClientPubkeyLen)
	}
	if len(msg.Nonce) != NonceLen {
		return fmt.Errorf("nonce must be %d bytes", NonceLen)
	}
	for i, ct := range [][]byte{msg.DestCt0, msg.DestCt1, msg.DestCt2, msg.DestCt3} {
		if len(ct) != CiphertextWordLen {
			return fmt.Errorf("ciphertext word %d must be %d bytes", i, CiphertextWordLen)
		}
	}
	return nil
}

// MsgClaim posts a bond for the exclusive right to deliver a request
// off-ledger, and queues a reseal job granting the solver visibility
// into the encrypted destination.
type MsgClaim struct {
	Solver       string `json:"solver"`
	Payer        string `json:"payer"`
	RequestId    uint64 `json:"request_id"`
	Bond         uint64 `json:"bond"`
	SolverPubkey []byte `json:"solver_pubkey"`
	ResealJobId  uint64 `json:"reseal_job_id"`
}

type MsgClaimResponse struct {
	ClaimDeadline int64 `json:"claim_deadline"`
}

func (msg *MsgClaim) Reset()         { *msg = MsgClaim{} }
func (msg *MsgClaim) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgClaim) ProtoMessage()      {}

// GetSigners returns the expected signers for MsgClaim
func (msg *MsgClaim) GetSigners() []sdk.AccAddress {
	solver, _ := sdk.AccAddressFromBech32(msg.Solver)
	return []sdk.AccAddress{solver}
}

// ValidateBasic performs basic validation of MsgClaim
func (msg *MsgClaim) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Solver); err != nil {
		return ErrInvalidAddress.Wrapf("solver: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Payer); err != nil {
		return ErrInvalidAddress.Wrapf("payer: %v", err)
	}
	if msg.Bond == 0 {
		return ErrBondTooLow.Wrap("bond cannot be zero")
	}
	if len(msg.SolverPubkey) != ClientPubkeyLen {
		return fmt.Errorf("solver pubkey must be %d bytes", ClientPubkeyLen)
	}
	return nil
}

// MsgReleaseExpiredClaim releases a claim whose deadline has passed:
// part of the bond is slashed to the collector, the rest refunded to
// the previous solver, and the request reopens. Callable by anyone.
type MsgReleaseExpiredClaim struct {
	Caller    string `json:"caller"`
	Payer     string `json:"payer"`
	RequestId uint64 `json:"request_id"`
}

type MsgReleaseExpiredClaimResponse struct {
	Slashed uint64 `json:"slashed"`
	Refund  uint64 `json:"refund"`
}

func (msg *MsgReleaseExpiredClaim) Reset()         { *msg = MsgReleaseExpiredClaim{} }
func (msg *MsgReleaseExpiredClaim) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgReleaseExpiredClaim) ProtoMessage()      {}

// GetSigners returns the expected signers for MsgReleaseExpiredClaim
func (msg *MsgReleaseExpiredClaim) GetSigners() []sdk.AccAddress {
	caller, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{caller}
}

// ValidateBasic performs basic validation of MsgReleaseExpiredClaim
func (msg *MsgReleaseExpiredClaim) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return ErrInvalidAddress.Wrapf("caller: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Payer); err != nil {
		return ErrInvalidAddress.Wrapf("payer: %v", err)
	}
	return nil
}

// MsgSettle pays the recorded solver (net + fee) out of escrow, refunds
// the bond, and finalizes the request. The delivery evidence is carried
// verbatim and is not verified on-ledger; the relayer is trusted.
type MsgSettle struct {
	Relayer      string `json:"relayer"`
	Payer        string `json:"payer"`
	RequestId    uint64 `json:"request_id"`
	DestTxHash   []byte `json:"dest_tx_hash"`
	EvidenceHash []byte `json:"evidence_hash"`
}

type MsgSettleResponse struct {
	Payout uint64 `json:"payout"`
}

func (msg *MsgSettle) Reset()         { *msg = MsgSettle{} }
func (msg *MsgSettle) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSettle) ProtoMessage()      {}

// GetSigners returns the expected signers for MsgSettle
func (msg *MsgSettle) GetSigners() []sdk.AccAddress {
	relayer, _ := sdk.AccAddressFromBech32(msg.Relayer)
	return []sdk.AccAddress{relayer}
}

// ValidateBasic performs basic validation of MsgSettle
func (msg *MsgSettle) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Relayer); err != nil {
		return ErrInvalidAddress.Wrapf("relayer: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Payer); err != nil {
		return ErrInvalidAddress.Wrapf("payer: %v", err)
	}
	if len(msg.DestTxHash) != 32 {
		return fmt.Errorf("dest tx hash must be 32 bytes")
	}
	if len(msg.EvidenceHash) != 32 {
		return fmt.Errorf("evidence hash must be 32 bytes")
	}
	return nil
}

// MsgResolveComputation delivers the computation service's result for
// an outstanding plan-payout job. Success emits the attestation event;
// any other outcome aborts with ErrAbortedComputation and leaves all
// state untouched.
type MsgResolveComputation struct {
	Submitter   string `json:"submitter"`
	JobId       uint64 `json:"job_id"`
	Success     bool   `json:"success"`
	OutputNonce []byte `json:"output_nonce"`
}

type MsgResolveComputationResponse struct{}

func (msg *MsgResolveComputation) Reset()         { *msg = MsgResolveComputation{} }
func (msg *MsgResolveComputation) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgResolveComputation) ProtoMessage()      {}

// GetSigners returns the expected signers for MsgResolveComputation
func (msg *MsgResolveComputation) GetSigners() []sdk.AccAddress {
	submitter, _ := sdk.AccAddressFromBech32(msg.Submitter)
	return []sdk.AccAddress{submitter}
}

// ValidateBasic performs basic validation of MsgResolveComputation
func (msg *MsgResolveComputation) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Submitter); err != nil {
		return ErrInvalidAddress.Wrapf("submitter: %v", err)
	}
	if msg.Success && len(msg.OutputNonce) != NonceLen {
		return fmt.Errorf("output nonce must be %d bytes", NonceLen)
	}
	return nil
}
