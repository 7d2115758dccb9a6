package keeper

import (
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veilbridge/veil/x/bridge/types"
)

// GetRequest returns the bridge request for (payer, requestID)
func (k Keeper) GetRequest(ctx sdk.Context, payer sdk.AccAddress, requestID uint64) (types.BridgeRequest, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.RequestKey(payer, requestID))
	if bz == nil {
		return types.BridgeRequest{}, types.ErrRequestNotFound.Wrapf("payer %s id %d", payer, requestID)
	}

	var req types.BridgeRequest
	if err := k.cdc.Unmarshal(bz, &req); err != nil {
		return types.BridgeRequest{}, fmt.Errorf("unmarshal request: %w", err)
	}
	return req, nil
}

// HasRequest reports whether a request exists for (payer, requestID)
func (k Keeper) HasRequest(ctx sdk.Context, payer sdk.AccAddress, requestID uint64) bool {
	return k.getStore(ctx).Has(types.RequestKey(payer, requestID))
}

// SetRequest persists a bridge request
func (k Keeper) SetRequest(ctx sdk.Context, req types.BridgeRequest) error {
	payer, err := sdk.AccAddressFromBech32(req.Payer)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("request payer: %v", err)
	}

	bz, err := k.cdc.Marshal(&req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	k.getStore(ctx).Set(types.RequestKey(payer, req.RequestId), bz)
	return nil
}

// IterateRequests walks every stored request until cb returns true
func (k Keeper) IterateRequests(ctx sdk.Context, cb func(types.BridgeRequest) bool) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.RequestKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var req types.BridgeRequest
		if err := k.cdc.Unmarshal(iterator.Value(), &req); err != nil {
			return fmt.Errorf("unmarshal request: %w", err)
		}
		if cb(req) {
			break
		}
	}
	return nil
}

// GetAllRequests returns every stored request, for genesis export
func (k Keeper) GetAllRequests(ctx sdk.Context) ([]types.BridgeRequest, error) {
	var requests []types.BridgeRequest
	err := k.IterateRequests(ctx, func(req types.BridgeRequest) bool {
		requests = append(requests, req)
		return false
	})
	return requests, err
}

// GetRequestsByPayer returns every request created by the given payer
func (k Keeper) GetRequestsByPayer(ctx sdk.Context, payer sdk.AccAddress) ([]types.BridgeRequest, error) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.RequestPayerPrefix(payer))
	defer iterator.Close()

	var requests []types.BridgeRequest
	for ; iterator.Valid(); iterator.Next() {
		var req types.BridgeRequest
		if err := k.cdc.Unmarshal(iterator.Value(), &req); err != nil {
			return nil, fmt.Errorf("unmarshal request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}
