package types

import (
	"context"
)

// MsgServer is the bridge module's message handling interface.
type MsgServer interface {
	InitConfig(context.Context, *MsgInitConfig) (*MsgInitConfigResponse, error)
	UpdateConfig(context.Context, *MsgUpdateConfig) (*MsgUpdateConfigResponse, error)
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Claim(context.Context, *MsgClaim) (*MsgClaimResponse, error)
	ReleaseExpiredClaim(context.Context, *MsgReleaseExpiredClaim) (*MsgReleaseExpiredClaimResponse, error)
	Settle(context.Context, *MsgSettle) (*MsgSettleResponse, error)
	ResolveComputation(context.Context, *MsgResolveComputation) (*MsgResolveComputationResponse, error)
}
