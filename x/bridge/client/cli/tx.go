package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/veilbridge/veil/x/bridge/types"
)

// GetTxCmd returns the transaction commands for the bridge module
func GetTxCmd() *cobra.Command {
	bridgeTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Bridge transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	bridgeTxCmd.AddCommand(
		CmdInitConfig(),
		CmdUpdateConfig(),
		CmdDeposit(),
		CmdClaim(),
		CmdReleaseExpiredClaim(),
		CmdSettle(),
		CmdResolveComputation(),
	)

	return bridgeTxCmd
}

func decodeHexExact(s string, want int, what string) ([]byte, error) {
	bz, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", what, err)
	}
	if len(bz) != want {
		return nil, fmt.Errorf("%s must be %d bytes, got %d", what, want, len(bz))
	}
	return bz, nil
}

// CmdInitConfig returns a CLI command handler for initializing the bridge config
func CmdInitConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-config [fee-bps] [min-fee] [max-fee] [claim-window-secs] [min-solver-bond] [slash-bps] [bond-denom]",
		Short: "Initialize the bridge config; the signer becomes the owner",
		Args:  cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feeBps, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid fee-bps: %w", err)
			}
			minFee, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid min-fee: %w", err)
			}
			maxFee, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid max-fee: %w", err)
			}
			claimWindow, err := strconv.ParseInt(args[3], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid claim-window-secs: %w", err)
			}
			minBond, err := strconv.ParseUint(args[4], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid min-solver-bond: %w", err)
			}
			slashBps, err := strconv.ParseUint(args[5], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid slash-bps: %w", err)
			}

			msg := &types.MsgInitConfig{
				Authority:       clientCtx.GetFromAddress().String(),
				FeeBps:          uint32(feeBps),
				MinFee:          minFee,
				MaxFee:          maxFee,
				ClaimWindowSecs: claimWindow,
				MinSolverBond:   minBond,
				SlashBps:        uint32(slashBps),
				BondDenom:       args[6],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateConfig returns a CLI command handler for partial config updates
func CmdUpdateConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-config",
		Short: "Update bridge config fields; unset flags keep their current value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgUpdateConfig{
				Authority: clientCtx.GetFromAddress().String(),
			}
			if cmd.Flags().Changed(FlagFeeBps) {
				v, err := cmd.Flags().GetUint32(FlagFeeBps)
				if err != nil {
					return err
				}
				msg.FeeBps = &v
			}
			if cmd.Flags().Changed(FlagMinFee) {
				v, err := cmd.Flags().GetUint64(FlagMinFee)
				if err != nil {
					return err
				}
				msg.MinFee = &v
			}
			if cmd.Flags().Changed(FlagMaxFee) {
				v, err := cmd.Flags().GetUint64(FlagMaxFee)
				if err != nil {
					return err
				}
				msg.MaxFee = &v
			}
			if cmd.Flags().Changed(FlagClaimWindowSecs) {
				v, err := cmd.Flags().GetInt64(FlagClaimWindowSecs)
				if err != nil {
					return err
				}
				msg.ClaimWindowSecs = &v
			}
			if cmd.Flags().Changed(FlagMinSolverBond) {
				v, err := cmd.Flags().GetUint64(FlagMinSolverBond)
				if err != nil {
					return err
				}
				msg.MinSolverBond = &v
			}
			if cmd.Flags().Changed(FlagSlashBps) {
				v, err := cmd.Flags().GetUint32(FlagSlashBps)
				if err != nil {
					return err
				}
				msg.SlashBps = &v
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Uint32(FlagFeeBps, 0, "Fee in basis points")
	cmd.Flags().Uint64(FlagMinFee, 0, "Minimum fee in base units")
	cmd.Flags().Uint64(FlagMaxFee, 0, "Maximum fee in base units")
	cmd.Flags().Int64(FlagClaimWindowSecs, 0, "Claim window in seconds")
	cmd.Flags().Uint64(FlagMinSolverBond, 0, "Minimum solver bond in base units")
	cmd.Flags().Uint32(FlagSlashBps, 0, "Slash fraction in basis points")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDeposit returns a CLI command handler for bridge deposits
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [request-id] [denom] [amount] [job-id]",
		Short: "Lock funds for a bridge request and queue the payout computation",
		Long: `Lock funds for a bridge request and queue the payout computation.

The encrypted destination material is passed as hex flags: a 32-byte
client public key, a 16-byte nonce, and four 32-byte ciphertext words.

Example:
  $ veild tx bridge deposit 1 uatom 1000000 42 \
    --client-pubkey <64 hex chars> \
    --nonce <32 hex chars> \
    --dest-ct <64 hex chars> --dest-ct <64 hex chars> \
    --dest-ct <64 hex chars> --dest-ct <64 hex chars> \
    --from payer`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			requestID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid request-id: %w", err)
			}
			amount, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}
			jobID, err := strconv.ParseUint(args[3], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid job-id: %w", err)
			}

			pubkeyHex, err := cmd.Flags().GetString(FlagClientPubkey)
			if err != nil {
				return err
			}
			pubkey, err := decodeHexExact(pubkeyHex, types.ClientPubkeyLen, "client pubkey")
			if err != nil {
				return err
			}

			nonceHex, err := cmd.Flags().GetString(FlagNonce)
			if err != nil {
				return err
			}
			nonce, err := decodeHexExact(nonceHex, types.NonceLen, "nonce")
			if err != nil {
				return err
			}

			ctHexes, err := cmd.Flags().GetStringArray(FlagDestCt)
			if err != nil {
				return err
			}
			if len(ctHexes) != types.DestCiphertextWords {
				return fmt.Errorf("need %d --%s flags, got %d", types.DestCiphertextWords, FlagDestCt, len(ctHexes))
			}
			cts := make([][]byte, types.DestCiphertextWords)
			for i, h := range ctHexes {
				cts[i], err = decodeHexExact(h, types.CiphertextWordLen, "ciphertext word")
				if err != nil {
					return err
				}
			}

			msg := &types.MsgDeposit{
				Payer:        clientCtx.GetFromAddress().String(),
				RequestId:    requestID,
				AssetDenom:   args[1],
				Amount:       amount,
				JobId:        jobID,
				ClientPubkey: pubkey,
				Nonce:        nonce,
				DestCt0:      cts[0],
				DestCt1:      cts[1],
				DestCt2:      cts[2],
				DestCt3:      cts[3],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagClientPubkey, "", "Depositor's ephemeral x25519 public key (hex)")
	cmd.Flags().String(FlagNonce, "", "Encryption nonce (hex)")
	cmd.Flags().StringArray(FlagDestCt, nil, "Encrypted destination word (hex, repeat four times)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClaim returns a CLI command handler for solver claims
func CmdClaim() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim [payer] [request-id] [bond] [reseal-job-id]",
		Short: "Post a bond for the exclusive right to deliver a request",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			requestID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid request-id: %w", err)
			}
			bond, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid bond: %w", err)
			}
			jobID, err := strconv.ParseUint(args[3], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid reseal-job-id: %w", err)
			}

			pubkeyHex, err := cmd.Flags().GetString(FlagSolverPubkey)
			if err != nil {
				return err
			}
			pubkey, err := decodeHexExact(pubkeyHex, types.ClientPubkeyLen, "solver pubkey")
			if err != nil {
				return err
			}

			msg := &types.MsgClaim{
				Solver:       clientCtx.GetFromAddress().String(),
				Payer:        args[0],
				RequestId:    requestID,
				Bond:         bond,
				SolverPubkey: pubkey,
				ResealJobId:  jobID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagSolverPubkey, "", "Solver's x25519 public key for the reseal (hex)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdReleaseExpiredClaim returns a CLI command handler for lazy claim expiry
func CmdReleaseExpiredClaim() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release-expired-claim [payer] [request-id]",
		Short: "Release a lapsed claim, slashing part of the bond",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			requestID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid request-id: %w", err)
			}

			msg := &types.MsgReleaseExpiredClaim{
				Caller:    clientCtx.GetFromAddress().String(),
				Payer:     args[0],
				RequestId: requestID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSettle returns a CLI command handler for relayer-attested settlement
func CmdSettle() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle [payer] [request-id] [dest-tx-hash] [evidence-hash]",
		Short: "Pay the solver out of escrow against delivery evidence",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			requestID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid request-id: %w", err)
			}
			destTxHash, err := decodeHexExact(args[2], 32, "dest tx hash")
			if err != nil {
				return err
			}
			evidenceHash, err := decodeHexExact(args[3], 32, "evidence hash")
			if err != nil {
				return err
			}

			msg := &types.MsgSettle{
				Relayer:      clientCtx.GetFromAddress().String(),
				Payer:        args[0],
				RequestId:    requestID,
				DestTxHash:   destTxHash,
				EvidenceHash: evidenceHash,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdResolveComputation returns a CLI command handler for computation results
func CmdResolveComputation() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve-computation [job-id] [success] [output-nonce]",
		Short: "Deliver a computation result for a pending plan-payout job",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			jobID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid job-id: %w", err)
			}
			success, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid success flag: %w", err)
			}

			var outputNonce []byte
			if success {
				if len(args) < 3 {
					return fmt.Errorf("output-nonce is required on success")
				}
				outputNonce, err = decodeHexExact(args[2], types.NonceLen, "output nonce")
				if err != nil {
					return err
				}
			}

			msg := &types.MsgResolveComputation{
				Submitter:   clientCtx.GetFromAddress().String(),
				JobId:       jobID,
				Success:     success,
				OutputNonce: outputNonce,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
