package keeper

import (
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veilbridge/veil/x/bridge/types"
)

// GetJob returns the computation job for the given id
func (k Keeper) GetJob(ctx sdk.Context, jobID uint64) (types.ComputationJob, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.JobKey(jobID))
	if bz == nil {
		return types.ComputationJob{}, types.ErrJobNotFound.Wrapf("id %d", jobID)
	}

	var job types.ComputationJob
	if err := k.cdc.Unmarshal(bz, &job); err != nil {
		return types.ComputationJob{}, fmt.Errorf("unmarshal job: %w", err)
	}
	return job, nil
}

// HasJob reports whether a job exists for the given id
func (k Keeper) HasJob(ctx sdk.Context, jobID uint64) bool {
	return k.getStore(ctx).Has(types.JobKey(jobID))
}

// SetJob persists a computation job
func (k Keeper) SetJob(ctx sdk.Context, job types.ComputationJob) error {
	bz, err := k.cdc.Marshal(&job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}
	k.getStore(ctx).Set(types.JobKey(job.JobId), bz)
	return nil
}

// IterateJobs walks every stored job until cb returns true
func (k Keeper) IterateJobs(ctx sdk.Context, cb func(types.ComputationJob) bool) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.JobKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var job types.ComputationJob
		if err := k.cdc.Unmarshal(iterator.Value(), &job); err != nil {
			return fmt.Errorf("unmarshal job: %w", err)
		}
		if cb(job) {
			break
		}
	}
	return nil
}

// GetAllJobs returns every stored job, for genesis export
func (k Keeper) GetAllJobs(ctx sdk.Context) ([]types.ComputationJob, error) {
	var jobs []types.ComputationJob
	err := k.IterateJobs(ctx, func(job types.ComputationJob) bool {
		jobs = append(jobs, job)
		return false
	})
	return jobs, err
}

// queueJob records a new pending job against the external computation
// service and emits the queue event the off-ledger cluster watches.
// Job ids are caller-chosen, so collision is the caller's error.
func (k Keeper) queueJob(ctx sdk.Context, job types.ComputationJob) error {
	if k.HasJob(ctx, job.JobId) {
		return types.ErrJobIdInUse.Wrapf("id %d", job.JobId)
	}

	job.Status = types.JobStatusPending
	job.QueuedAt = ctx.BlockTime().Unix()
	if err := job.Validate(); err != nil {
		return err
	}
	if err := k.SetJob(ctx, job); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeComputationQueued,
			sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", job.JobId)),
			sdk.NewAttribute(types.AttributeKeyJobKind, job.Kind),
		),
	)

	k.metrics.JobsQueued.WithLabelValues(job.Kind).Inc()
	return nil
}
