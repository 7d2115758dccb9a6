package keeper_test

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/veilbridge/veil/testutil/keeper"
	"github.com/veilbridge/veil/x/bridge/keeper"
	"github.com/veilbridge/veil/x/bridge/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	f := testkeeper.BridgeKeeper(t)
	owner := sdk.AccAddress([]byte("owner_______________"))
	payer := sdk.AccAddress([]byte("payer_______________"))
	solver := sdk.AccAddress([]byte("solver______________"))

	require.NoError(t, f.Keeper.InitConfig(f.Ctx, types.BridgeConfig{
		Owner:           owner.String(),
		FeeBps:          50,
		MinFee:          10,
		MaxFee:          1_000_000,
		ClaimWindowSecs: 3600,
		MinSolverBond:   1_000,
		SlashBps:        5_000,
		BondDenom:       "uveil",
	}))

	f.FundAccount(t, payer, "uatom", 2_000_000)
	f.FundAccount(t, solver, "uveil", 10_000)

	_, err := f.Keeper.Deposit(f.Ctx, types.MsgDeposit{
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

	_, err = f.Keeper.Claim(f.Ctx, types.MsgClaim{
		Solver:       solver.String(),
		Payer:        payer.String(),
		RequestId:    1,
		Bond:         2_000,
		SolverPubkey: make([]byte, types.ClientPubkeyLen),
		ResealJobId:  101,
	})
	require.NoError(t, err)

	exported, err := f.Keeper.ExportGenesis(f.Ctx)
	require.NoError(t, err)
	require.NotNil(t, exported.Config)
	require.Len(t, exported.Requests, 1)
	require.Len(t, exported.Jobs, 2)
	require.NoError(t, exported.Validate())

	// Reimport into a fresh store and compare state and rebuilt
	// accumulators.
	f2 := testkeeper.BridgeKeeper(t)
	require.NoError(t, f2.Keeper.InitGenesis(f2.Ctx, *exported))

	cfg, err := f2.Keeper.GetConfig(f2.Ctx)
	require.NoError(t, err)
	require.Equal(t, *exported.Config, cfg)

	req, err := f2.Keeper.GetRequest(f2.Ctx, payer, 1)
	require.NoError(t, err)
	require.Equal(t, exported.Requests[0], req)

	require.Equal(t, uint64(1_000_000), f2.Keeper.GetLockedValue(f2.Ctx, "uatom"))
	require.Equal(t, uint64(2_000), f2.Keeper.GetLockedValue(f2.Ctx, "uveil"))

	reexported, err := f2.Keeper.ExportGenesis(f2.Ctx)
	require.NoError(t, err)
	require.Equal(t, exported, reexported)
}

func TestGenesisRejectsInvalid(t *testing.T) {
	f := testkeeper.BridgeKeeper(t)

	bad := types.GenesisState{
		Requests: []types.BridgeRequest{{RequestId: 1, Payer: "not-bech32"}},
	}
	require.Error(t, f.Keeper.InitGenesis(f.Ctx, bad))
}

func TestInvariantsHoldAcrossLifecycle(t *testing.T) {
	f := testkeeper.BridgeKeeper(t)
	owner := sdk.AccAddress([]byte("owner_______________"))
	payer := sdk.AccAddress([]byte("payer_______________"))
	solver := sdk.AccAddress([]byte("solver______________"))

	checkAll := func() {
		for name, inv := range map[string]sdk.Invariant{
			"custody-backing":   keeper.CustodyBackingInvariant(*f.Keeper),
			"locked-accounting": keeper.LockedAccountingInvariant(*f.Keeper),
			"request-shape":     keeper.RequestShapeInvariant(*f.Keeper),
		} {
			msg, broken := inv(f.Ctx)
			require.False(t, broken, "%s: %s", name, msg)
		}
	}

	require.NoError(t, f.Keeper.InitConfig(f.Ctx, types.BridgeConfig{
		Owner:           owner.String(),
		FeeBps:          50,
		MinFee:          10,
		MaxFee:          1_000_000,
		ClaimWindowSecs: 3600,
		MinSolverBond:   1_000,
		SlashBps:        5_000,
		BondDenom:       "uveil",
	}))
	checkAll()

	f.FundAccount(t, payer, "uatom", 2_000_000)
	f.FundAccount(t, solver, "uveil", 10_000)

	_, err := f.Keeper.Deposit(f.Ctx, types.MsgDeposit{
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
	checkAll()

	_, err = f.Keeper.Claim(f.Ctx, types.MsgClaim{
		Solver:       solver.String(),
		Payer:        payer.String(),
		RequestId:    1,
		Bond:         2_000,
		SolverPubkey: make([]byte, types.ClientPubkeyLen),
		ResealJobId:  101,
	})
	require.NoError(t, err)
	checkAll()

	f.Ctx = f.Ctx.WithBlockTime(f.Ctx.BlockTime().Add(3601 * time.Second))
	_, _, err = f.Keeper.ReleaseExpiredClaim(f.Ctx, types.MsgReleaseExpiredClaim{
		Caller:    owner.String(),
		Payer:     payer.String(),
		RequestId: 1,
	})
	require.NoError(t, err)
	checkAll()

	_, err = f.Keeper.Claim(f.Ctx, types.MsgClaim{
		Solver:       solver.String(),
		Payer:        payer.String(),
		RequestId:    1,
		Bond:         2_000,
		SolverPubkey: make([]byte, types.ClientPubkeyLen),
		ResealJobId:  102,
	})
	require.NoError(t, err)

	_, err = f.Keeper.Settle(f.Ctx, types.MsgSettle{
		Relayer:      owner.String(),
		Payer:        payer.String(),
		RequestId:    1,
		DestTxHash:   make([]byte, 32),
		EvidenceHash: make([]byte, 32),
	})
	require.NoError(t, err)
	checkAll()
}
