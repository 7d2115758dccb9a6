package keeper

import (
	"encoding/hex"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veilbridge/veil/x/bridge/types"
)

// ResolveComputation records the computation service's result for a
// pending plan-payout job. Only the config owner, who fronts for the
// off-ledger cluster, may deliver results.
//
// A successful result marks the job resolved and emits the attestation
// event carrying the service's output nonce. A failure report aborts
// the whole transaction, so the job stays pending and can be resolved
// by a later attempt; jobs that the service silently drops simply
// remain pending forever.
func (k Keeper) ResolveComputation(ctx sdk.Context, msg types.MsgResolveComputation) error {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}
	if msg.Submitter != cfg.Owner {
		return types.ErrOnlyOwner.Wrapf("submitter %s is not the config owner", msg.Submitter)
	}

	job, err := k.GetJob(ctx, msg.JobId)
	if err != nil {
		return err
	}
	if job.Status == types.JobStatusResolved {
		return types.ErrJobResolved.Wrapf("id %d", msg.JobId)
	}
	if !job.HasCallback {
		return types.ErrJobNotResolvable.Wrapf("id %d kind %s", msg.JobId, job.Kind)
	}

	if !msg.Success {
		k.metrics.JobsResolved.WithLabelValues(job.Kind, "aborted").Inc()
		return types.ErrAbortedComputation.Wrapf("job %d", msg.JobId)
	}

	job.Status = types.JobStatusResolved
	if err := k.SetJob(ctx, job); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAttestationQueued,
			sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", job.JobId)),
			sdk.NewAttribute(types.AttributeKeyJobKind, job.Kind),
			sdk.NewAttribute(types.AttributeKeyNonce, hex.EncodeToString(msg.OutputNonce)),
			sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", ctx.BlockTime().Unix())),
		),
	)

	k.metrics.JobsResolved.WithLabelValues(job.Kind, "ok").Inc()

	k.Logger(ctx).Info("computation resolved",
		"job_id", job.JobId,
		"kind", job.Kind,
	)
	return nil
}
