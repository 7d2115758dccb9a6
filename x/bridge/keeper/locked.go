package keeper

import (
	"encoding/binary"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veilbridge/veil/x/bridge/types"
)

// Per-denom accumulators of value the module account holds on behalf of
// requests (escrow) and solvers (bonds). The custody invariant checks
// these against the actual bank balances.

// GetLockedValue returns the tracked locked amount for a denom
func (k Keeper) GetLockedValue(ctx sdk.Context, denom string) uint64 {
	bz := k.getStore(ctx).Get(types.LockedValueKey(denom))
	if len(bz) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) setLockedValue(ctx sdk.Context, denom string, amount uint64) {
	store := k.getStore(ctx)
	k.metrics.LockedValue.WithLabelValues(denom).Set(float64(amount))
	if amount == 0 {
		store.Delete(types.LockedValueKey(denom))
		return
	}
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, amount)
	store.Set(types.LockedValueKey(denom), bz)
}

// addLockedValue increases the tracked locked amount for a denom
func (k Keeper) addLockedValue(ctx sdk.Context, denom string, amount uint64) error {
	total, err := SafeAddUint64(k.GetLockedValue(ctx, denom), amount)
	if err != nil {
		return err
	}
	k.setLockedValue(ctx, denom, total)
	return nil
}

// subLockedValue decreases the tracked locked amount for a denom
func (k Keeper) subLockedValue(ctx sdk.Context, denom string, amount uint64) error {
	total, err := SafeSubUint64(k.GetLockedValue(ctx, denom), amount)
	if err != nil {
		return err
	}
	k.setLockedValue(ctx, denom, total)
	return nil
}

// IterateLockedValues walks every per-denom accumulator
func (k Keeper) IterateLockedValues(ctx sdk.Context, cb func(denom string, amount uint64) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.LockedValuePrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		denom := string(iterator.Key()[len(types.LockedValuePrefix):])
		if len(iterator.Value()) != 8 {
			continue
		}
		if cb(denom, binary.BigEndian.Uint64(iterator.Value())) {
			break
		}
	}
}
