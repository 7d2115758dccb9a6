package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veilbridge/veil/x/bridge/types"
)

// Deposit locks the full amount (net plus fee) in the module account,
// records the request, and queues the plan-payout computation over the
// encrypted destination material. Nothing leaves escrow until
// settlement or expiry.
func (k Keeper) Deposit(ctx sdk.Context, msg types.MsgDeposit) (types.BridgeRequest, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return types.BridgeRequest{}, err
	}

	payer, err := sdk.AccAddressFromBech32(msg.Payer)
	if err != nil {
		return types.BridgeRequest{}, types.ErrInvalidAddress.Wrapf("payer: %v", err)
	}
	if msg.Amount == 0 {
		return types.BridgeRequest{}, types.ErrZeroAmount
	}
	if k.HasRequest(ctx, payer, msg.RequestId) {
		return types.BridgeRequest{}, types.ErrDuplicateRequest.Wrapf("payer %s id %d", msg.Payer, msg.RequestId)
	}
	if k.HasJob(ctx, msg.JobId) {
		return types.BridgeRequest{}, types.ErrJobIdInUse.Wrapf("id %d", msg.JobId)
	}

	net, fee := types.ComputeFee(msg.Amount, cfg)

	escrow := sdk.NewCoins(sdk.NewCoin(msg.AssetDenom, math.NewIntFromUint64(msg.Amount)))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, payer, types.ModuleName, escrow); err != nil {
		return types.BridgeRequest{}, err
	}
	if err := k.addLockedValue(ctx, msg.AssetDenom, msg.Amount); err != nil {
		return types.BridgeRequest{}, err
	}

	req := types.BridgeRequest{
		RequestId:    msg.RequestId,
		Payer:        msg.Payer,
		AssetDenom:   msg.AssetDenom,
		AmountLocked: net,
		FeeLocked:    fee,
		CreatedAt:    ctx.BlockTime().Unix(),
		ClientPubkey: msg.ClientPubkey,
		Nonce:        msg.Nonce,
		DestCt0:      msg.DestCt0,
		DestCt1:      msg.DestCt1,
		DestCt2:      msg.DestCt2,
		DestCt3:      msg.DestCt3,
	}
	if err := k.SetRequest(ctx, req); err != nil {
		return types.BridgeRequest{}, err
	}

	job := types.ComputationJob{
		JobId:        msg.JobId,
		Kind:         types.JobKindPlanPayout,
		Requester:    msg.Payer,
		ClientPubkey: msg.ClientPubkey,
		Nonce:        msg.Nonce,
		Ciphertexts:  [][]byte{msg.DestCt0, msg.DestCt1, msg.DestCt2, msg.DestCt3},
		HasCallback:  true,
	}
	if err := k.queueJob(ctx, job); err != nil {
		return types.BridgeRequest{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeposit,
			sdk.NewAttribute(types.AttributeKeyRequestID, fmt.Sprintf("%d", req.RequestId)),
			sdk.NewAttribute(types.AttributeKeyPayer, req.Payer),
			sdk.NewAttribute(types.AttributeKeyDenom, req.AssetDenom),
			sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprintf("%d", req.AmountLocked)),
			sdk.NewAttribute(types.AttributeKeyFee, fmt.Sprintf("%d", req.FeeLocked)),
			sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", msg.JobId)),
		),
	)

	k.metrics.DepositsTotal.WithLabelValues(req.AssetDenom).Inc()
	k.metrics.DepositVolume.WithLabelValues(req.AssetDenom).Add(float64(msg.Amount))
	k.metrics.FeesCharged.WithLabelValues(req.AssetDenom).Add(float64(fee))

	k.Logger(ctx).Info("bridge deposit locked",
		"payer", req.Payer,
		"request_id", req.RequestId,
		"amount", net,
		"fee", fee,
	)
	return req, nil
}
