package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/veilbridge/veil/testutil/keeper"
	"github.com/veilbridge/veil/x/bridge/keeper"
	"github.com/veilbridge/veil/x/bridge/types"
)

func TestMsgServerLifecycle(t *testing.T) {
	f := testkeeper.BridgeKeeper(t)
	srv := keeper.NewMsgServerImpl(*f.Keeper)
	owner := sdk.AccAddress([]byte("owner_______________"))
	payer := sdk.AccAddress([]byte("payer_______________"))
	solver := sdk.AccAddress([]byte("solver______________"))

	_, err := srv.InitConfig(f.Ctx, &types.MsgInitConfig{
		Authority:       owner.String(),
		FeeBps:          50,
		MinFee:          10,
		MaxFee:          1_000_000,
		ClaimWindowSecs: 3600,
		MinSolverBond:   1_000,
		SlashBps:        5_000,
		BondDenom:       "uveil",
	})
	require.NoError(t, err)

	f.FundAccount(t, payer, "uatom", 2_000_000)
	f.FundAccount(t, solver, "uveil", 10_000)

	depRes, err := srv.Deposit(f.Ctx, &types.MsgDeposit{
		Payer:        payer.String(),
		RequestId:    1,
		AssetDenom:   "uatom",
		Amount:       1_000_000,
		JobId:        100,
		ClientPubkey: make([]byte, types.ClientPubkeyLen),
		Nonce:        make([]byte, types.NonceLen),
		DestCt0:      make([]byte, types.CiphertextWordLen),
		DestCt1:      make([]byte, types.CiphertextWordLen),
		DestCt2:      make([]byte, types.CiphertextWordLen),
		DestCt3:      make([]byte, types.CiphertextWordLen),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), depRes.RequestId)

	// malformed messages are rejected before touching state
	_, err = srv.Deposit(f.Ctx, &types.MsgDeposit{Payer: "bogus"})
	require.Error(t, err)

	claimRes, err := srv.Claim(f.Ctx, &types.MsgClaim{
		Solver:       solver.String(),
		Payer:        payer.String(),
		RequestId:    1,
		Bond:         2_000,
		SolverPubkey: make([]byte, types.ClientPubkeyLen),
		ResealJobId:  101,
	})
	require.NoError(t, err)
	require.Equal(t, f.Ctx.BlockTime().Unix()+3600, claimRes.ClaimDeadline)

	_, err = srv.ResolveComputation(f.Ctx, &types.MsgResolveComputation{
		Submitter:   owner.String(),
		JobId:       100,
		Success:     true,
		OutputNonce: make([]byte, types.NonceLen),
	})
	require.NoError(t, err)

	settleRes, err := srv.Settle(f.Ctx, &types.MsgSettle{
		Relayer:      owner.String(),
		Payer:        payer.String(),
		RequestId:    1,
		DestTxHash:   make([]byte, 32),
		EvidenceHash: make([]byte, 32),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000), settleRes.Payout)
}
