package keeper

import (
	"encoding/hex"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veilbridge/veil/x/bridge/types"
)

// Settle pays the recorded solver out of escrow and finalizes the
// request. The relayer attests that delivery happened on the
// destination ledger; the evidence hashes are recorded in events but
// not verified on-ledger. The solver receives the locked amount plus
// the fee as the delivery premium, and the bond comes back in full.
//
// Settlement only succeeds against a live claim: once the deadline has
// passed the bond belongs to the expiry path, not the settlement path.
func (k Keeper) Settle(ctx sdk.Context, msg types.MsgSettle) (payout uint64, err error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return 0, err
	}
	if msg.Relayer != cfg.Owner {
		return 0, types.ErrOnlyOwner.Wrapf("relayer %s is not the config owner", msg.Relayer)
	}

	payer, err := sdk.AccAddressFromBech32(msg.Payer)
	if err != nil {
		return 0, types.ErrInvalidAddress.Wrapf("payer: %v", err)
	}

	req, err := k.GetRequest(ctx, payer, msg.RequestId)
	if err != nil {
		return 0, err
	}

	if req.Finalized {
		return 0, types.ErrRequestAlreadyFinalized
	}
	if !req.Claimed {
		return 0, types.ErrNoClaim
	}
	if ctx.BlockTime().Unix() > req.ClaimDeadline {
		return 0, types.ErrClaimExpired
	}

	solver, err := sdk.AccAddressFromBech32(req.Solver)
	if err != nil {
		return 0, types.ErrInvalidAddress.Wrapf("recorded solver: %v", err)
	}

	payout, err = SafeAddUint64(req.AmountLocked, req.FeeLocked)
	if err != nil {
		return 0, err
	}

	coins := sdk.NewCoins(sdk.NewCoin(req.AssetDenom, math.NewIntFromUint64(payout)))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, solver, coins); err != nil {
		return 0, err
	}
	if err := k.subLockedValue(ctx, req.AssetDenom, payout); err != nil {
		return 0, err
	}

	bondRefund := req.BondAmount
	if bondRefund > 0 {
		bond := sdk.NewCoins(sdk.NewCoin(cfg.BondDenom, math.NewIntFromUint64(bondRefund)))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, solver, bond); err != nil {
			return 0, err
		}
		if err := k.subLockedValue(ctx, cfg.BondDenom, bondRefund); err != nil {
			return 0, err
		}
	}

	settledSolver := req.Solver
	req.Finalized = true
	req.Claimed = false
	req.Solver = ""
	req.ClaimDeadline = 0
	req.BondAmount = 0

	// Scrub the confidential material; a terminal record has no further
	// use for it.
	req.ClientPubkey = nil
	req.Nonce = nil
	req.DestCt0 = nil
	req.DestCt1 = nil
	req.DestCt2 = nil
	req.DestCt3 = nil
	if err := k.SetRequest(ctx, req); err != nil {
		return 0, err
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeEvidenceAttested,
			sdk.NewAttribute(types.AttributeKeyRequestID, fmt.Sprintf("%d", req.RequestId)),
			sdk.NewAttribute(types.AttributeKeyDestTxHash, hex.EncodeToString(msg.DestTxHash)),
			sdk.NewAttribute(types.AttributeKeyEvidenceHash, hex.EncodeToString(msg.EvidenceHash)),
		),
		sdk.NewEvent(
			types.EventTypeSettled,
			sdk.NewAttribute(types.AttributeKeyRequestID, fmt.Sprintf("%d", req.RequestId)),
			sdk.NewAttribute(types.AttributeKeyPayer, req.Payer),
			sdk.NewAttribute(types.AttributeKeySolver, settledSolver),
			sdk.NewAttribute(types.AttributeKeyPayout, fmt.Sprintf("%d", payout)),
			sdk.NewAttribute(types.AttributeKeyRefund, fmt.Sprintf("%d", bondRefund)),
		),
	})

	k.metrics.SettlementsTotal.Inc()
	k.metrics.PayoutVolume.WithLabelValues(req.AssetDenom).Add(float64(payout))

	k.Logger(ctx).Info("bridge request settled",
		"payer", req.Payer,
		"request_id", req.RequestId,
		"solver", settledSolver,
		"payout", payout,
	)
	return payout, nil
}
