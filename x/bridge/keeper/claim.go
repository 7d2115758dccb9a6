package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veilbridge/veil/x/bridge/types"
)

// Claim grants the solver the exclusive right to deliver a request
// off-ledger until the claim deadline. The bond is escrowed in the
// module account and a reseal job is queued so the computation service
// can re-encrypt the destination to the solver's key.
//
// A lapsed claim must go through ReleaseExpiredClaim before the request
// can be claimed again; otherwise the previous solver's bond would be
// stranded in escrow.
func (k Keeper) Claim(ctx sdk.Context, msg types.MsgClaim) (int64, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return 0, err
	}

	solver, err := sdk.AccAddressFromBech32(msg.Solver)
	if err != nil {
		return 0, types.ErrInvalidAddress.Wrapf("solver: %v", err)
	}
	payer, err := sdk.AccAddressFromBech32(msg.Payer)
	if err != nil {
		return 0, types.ErrInvalidAddress.Wrapf("payer: %v", err)
	}

	req, err := k.GetRequest(ctx, payer, msg.RequestId)
	if err != nil {
		return 0, err
	}

	now := ctx.BlockTime().Unix()
	if req.Finalized {
		return 0, types.ErrAlreadyFinalized
	}
	if req.Claimed {
		if now <= req.ClaimDeadline {
			return 0, types.ErrActiveClaim
		}
		return 0, types.ErrClaimLapsed
	}

	// An unconfigured bond requirement would make claims free to grief.
	if cfg.MinSolverBond == 0 {
		return 0, types.ErrBondTooLow.Wrap("bond requirement not configured")
	}
	if msg.Bond < cfg.MinSolverBond {
		return 0, types.ErrBondTooLow.Wrapf("got %d, need at least %d", msg.Bond, cfg.MinSolverBond)
	}

	deadline, err := SafeAddInt64(now, cfg.ClaimWindowSecs)
	if err != nil {
		return 0, err
	}

	if k.HasJob(ctx, msg.ResealJobId) {
		return 0, types.ErrJobIdInUse.Wrapf("id %d", msg.ResealJobId)
	}

	bond := sdk.NewCoins(sdk.NewCoin(cfg.BondDenom, math.NewIntFromUint64(msg.Bond)))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, solver, types.ModuleName, bond); err != nil {
		return 0, err
	}
	if err := k.addLockedValue(ctx, cfg.BondDenom, msg.Bond); err != nil {
		return 0, err
	}

	req.Claimed = true
	req.Solver = msg.Solver
	req.ClaimDeadline = deadline
	req.BondAmount = msg.Bond
	if err := k.SetRequest(ctx, req); err != nil {
		return 0, err
	}

	// Reseal jobs have no on-ledger callback; the solver fetches the
	// re-encrypted destination from the computation service directly.
	job := types.ComputationJob{
		JobId:        msg.ResealJobId,
		Kind:         types.JobKindReseal,
		Requester:    msg.Solver,
		ClientPubkey: msg.SolverPubkey,
		Nonce:        req.Nonce,
		Ciphertexts:  [][]byte{req.DestCt0, req.DestCt1, req.DestCt2, req.DestCt3},
		HasCallback:  false,
	}
	if err := k.queueJob(ctx, job); err != nil {
		return 0, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaimed,
			sdk.NewAttribute(types.AttributeKeyRequestID, fmt.Sprintf("%d", req.RequestId)),
			sdk.NewAttribute(types.AttributeKeyPayer, req.Payer),
			sdk.NewAttribute(types.AttributeKeySolver, msg.Solver),
			sdk.NewAttribute(types.AttributeKeyBond, fmt.Sprintf("%d", msg.Bond)),
			sdk.NewAttribute(types.AttributeKeyDeadline, fmt.Sprintf("%d", deadline)),
		),
	)

	k.metrics.ClaimsTotal.Inc()
	k.metrics.BondsLocked.WithLabelValues(cfg.BondDenom).Add(float64(msg.Bond))

	k.Logger(ctx).Info("bridge request claimed",
		"payer", req.Payer,
		"request_id", req.RequestId,
		"solver", msg.Solver,
		"deadline", deadline,
	)
	return deadline, nil
}
