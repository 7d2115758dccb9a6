package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veilbridge/veil/x/bridge/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the bridge MsgServer
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// InitConfig handles one-time bridge config initialization
func (ms msgServer) InitConfig(goCtx context.Context, msg *types.MsgInitConfig) (*types.MsgInitConfigResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cfg := types.BridgeConfig{
		Owner:           msg.Authority,
		FeeBps:          msg.FeeBps,
		MinFee:          msg.MinFee,
		MaxFee:          msg.MaxFee,
		ClaimWindowSecs: msg.ClaimWindowSecs,
		MinSolverBond:   msg.MinSolverBond,
		SlashBps:        msg.SlashBps,
		BondDenom:       msg.BondDenom,
	}
	if err := ms.Keeper.InitConfig(ctx, cfg); err != nil {
		return nil, err
	}
	return &types.MsgInitConfigResponse{}, nil
}

// UpdateConfig handles owner-signed partial config updates
func (ms msgServer) UpdateConfig(goCtx context.Context, msg *types.MsgUpdateConfig) (*types.MsgUpdateConfigResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.UpdateConfig(ctx, msg.Authority, *msg); err != nil {
		return nil, err
	}
	return &types.MsgUpdateConfigResponse{}, nil
}

// Deposit handles escrow deposits with encrypted destination material
func (ms msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	req, err := ms.Keeper.Deposit(ctx, *msg)
	if err != nil {
		return nil, err
	}
	return &types.MsgDepositResponse{RequestId: req.RequestId}, nil
}

// Claim handles bonded solver claims
func (ms msgServer) Claim(goCtx context.Context, msg *types.MsgClaim) (*types.MsgClaimResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	deadline, err := ms.Keeper.Claim(ctx, *msg)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimResponse{ClaimDeadline: deadline}, nil
}

// ReleaseExpiredClaim handles lazy expiry of lapsed claims
func (ms msgServer) ReleaseExpiredClaim(goCtx context.Context, msg *types.MsgReleaseExpiredClaim) (*types.MsgReleaseExpiredClaimResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	slashed, refund, err := ms.Keeper.ReleaseExpiredClaim(ctx, *msg)
	if err != nil {
		return nil, err
	}
	return &types.MsgReleaseExpiredClaimResponse{Slashed: slashed, Refund: refund}, nil
}

// Settle handles relayer-attested settlement
func (ms msgServer) Settle(goCtx context.Context, msg *types.MsgSettle) (*types.MsgSettleResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	payout, err := ms.Keeper.Settle(ctx, *msg)
	if err != nil {
		return nil, err
	}
	return &types.MsgSettleResponse{Payout: payout}, nil
}

// ResolveComputation handles computation service result delivery
func (ms msgServer) ResolveComputation(goCtx context.Context, msg *types.MsgResolveComputation) (*types.MsgResolveComputationResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.ResolveComputation(ctx, *msg); err != nil {
		return nil, err
	}
	return &types.MsgResolveComputationResponse{}, nil
}
