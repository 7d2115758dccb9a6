package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veilbridge/veil/x/bridge/types"
)

// ReleaseExpiredClaim releases a claim whose deadline has passed. The
// slash share of the bond goes to the config owner, the remainder is
// refunded to the lapsed solver, and the request reopens for claiming.
// Anyone may call this; expiry is lazy and only takes effect when a
// transaction asks for it.
func (k Keeper) ReleaseExpiredClaim(ctx sdk.Context, msg types.MsgReleaseExpiredClaim) (slashed, refund uint64, err error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return 0, 0, err
	}

	payer, err := sdk.AccAddressFromBech32(msg.Payer)
	if err != nil {
		return 0, 0, types.ErrInvalidAddress.Wrapf("payer: %v", err)
	}

	req, err := k.GetRequest(ctx, payer, msg.RequestId)
	if err != nil {
		return 0, 0, err
	}

	if req.Finalized {
		return 0, 0, types.ErrRequestAlreadyFinalized
	}
	if !req.Claimed {
		return 0, 0, types.ErrNoClaim
	}
	if ctx.BlockTime().Unix() <= req.ClaimDeadline {
		return 0, 0, types.ErrActiveClaim
	}
	if req.BondAmount == 0 {
		return 0, 0, types.ErrBondTooLow.Wrap("claimed request holds no bond")
	}

	solver, err := sdk.AccAddressFromBech32(req.Solver)
	if err != nil {
		return 0, 0, types.ErrInvalidAddress.Wrapf("recorded solver: %v", err)
	}

	slashed, err = SafeBpsShare(req.BondAmount, cfg.SlashBps)
	if err != nil {
		return 0, 0, err
	}
	refund = req.BondAmount - slashed

	vault := k.bankKeeper.GetBalance(ctx, k.GetModuleAddress(), cfg.BondDenom)
	if vault.Amount.LT(math.NewIntFromUint64(req.BondAmount)) {
		return 0, 0, types.ErrMathOverflow.Wrapf(
			"bond vault holds %s, release needs %d", vault.Amount, req.BondAmount,
		)
	}

	owner, err := sdk.AccAddressFromBech32(cfg.Owner)
	if err != nil {
		return 0, 0, types.ErrInvalidAddress.Wrapf("config owner: %v", err)
	}

	if slashed > 0 {
		coins := sdk.NewCoins(sdk.NewCoin(cfg.BondDenom, math.NewIntFromUint64(slashed)))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, owner, coins); err != nil {
			return 0, 0, err
		}
	}
	if refund > 0 {
		coins := sdk.NewCoins(sdk.NewCoin(cfg.BondDenom, math.NewIntFromUint64(refund)))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, solver, coins); err != nil {
			return 0, 0, err
		}
	}
	if err := k.subLockedValue(ctx, cfg.BondDenom, req.BondAmount); err != nil {
		return 0, 0, err
	}

	lapsedSolver := req.Solver
	req.Claimed = false
	req.Solver = ""
	req.ClaimDeadline = 0
	req.BondAmount = 0
	if err := k.SetRequest(ctx, req); err != nil {
		return 0, 0, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaimExpired,
			sdk.NewAttribute(types.AttributeKeyRequestID, fmt.Sprintf("%d", req.RequestId)),
			sdk.NewAttribute(types.AttributeKeyPayer, req.Payer),
			sdk.NewAttribute(types.AttributeKeySolver, lapsedSolver),
			sdk.NewAttribute(types.AttributeKeySlashed, fmt.Sprintf("%d", slashed)),
			sdk.NewAttribute(types.AttributeKeyRefund, fmt.Sprintf("%d", refund)),
		),
	)

	k.metrics.ClaimsReleased.Inc()
	k.metrics.BondsSlashed.WithLabelValues(cfg.BondDenom).Add(float64(slashed))

	k.Logger(ctx).Info("expired claim released",
		"payer", req.Payer,
		"request_id", req.RequestId,
		"solver", lapsedSolver,
		"slashed", slashed,
		"refund", refund,
	)
	return slashed, refund, nil
}
