package cli

// Flag names used by the bridge tx commands
const (
	FlagFeeBps          = "fee-bps"
	FlagMinFee          = "min-fee"
	FlagMaxFee          = "max-fee"
	FlagClaimWindowSecs = "claim-window-secs"
	FlagMinSolverBond   = "min-solver-bond"
	FlagSlashBps        = "slash-bps"

	FlagClientPubkey = "client-pubkey"
	FlagSolverPubkey = "solver-pubkey"
	FlagNonce        = "nonce"
	FlagDestCt       = "dest-ct"
)
