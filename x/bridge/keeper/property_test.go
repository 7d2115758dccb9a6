package keeper_test

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	testkeeper "github.com/veilbridge/veil/testutil/keeper"
	"github.com/veilbridge/veil/x/bridge/types"
)

// Value conservation across the whole claim lifecycle: whatever path a
// request takes, coins only ever move between payer, solver, owner and
// the module account, and the module never keeps more than the records
// say it should.
func TestLifecycleConservation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := testkeeper.BridgeKeeper(t)
		owner := sdk.AccAddress([]byte("owner_______________"))
		payer := sdk.AccAddress([]byte("payer_______________"))
		solver := sdk.AccAddress([]byte("solver______________"))

		amount := rapid.Uint64Range(2, 1_000_000_000).Draw(rt, "amount")
		minBond := rapid.Uint64Range(1, 1_000_000).Draw(rt, "min_bond")
		bond := rapid.Uint64Range(minBond, 2_000_000).Draw(rt, "bond")
		slashBps := rapid.Uint32Range(0, types.MaxBps).Draw(rt, "slash_bps")
		settleInstead := rapid.Bool().Draw(rt, "settle")

		require.NoError(t, f.Keeper.InitConfig(f.Ctx, types.BridgeConfig{
			Owner:           owner.String(),
			FeeBps:          rapid.Uint32Range(0, types.MaxBps).Draw(rt, "fee_bps"),
			MinFee:          rapid.Uint64Range(0, 1_000).Draw(rt, "min_fee"),
			MaxFee:          rapid.Uint64Range(1_000, 1_000_000).Draw(rt, "max_fee"),
			ClaimWindowSecs: 3600,
			MinSolverBond:   minBond,
			SlashBps:        slashBps,
			BondDenom:       "uveil",
		}))

		f.FundAccount(t, payer, "uatom", amount)
		f.FundAccount(t, solver, "uveil", bond)

		req, err := f.Keeper.Deposit(f.Ctx, types.MsgDeposit{
			Payer:        payer.String(),
			RequestId:    1,
			AssetDenom:   "uatom",
			Amount:       amount,
			JobId:        100,
			ClientPubkey: make([]byte, types.ClientPubkeyLen),
			Nonce:        make([]byte, types.NonceLen),
			DestCt0:      make([]byte, types.CiphertextWordLen),
			DestCt1:      make([]byte, types.CiphertextWordLen),
			DestCt2:      make([]byte, types.CiphertextWordLen),
			DestCt3:      make([]byte, types.CiphertextWordLen),
		})
		require.NoError(t, err)
		require.Equal(t, amount, req.AmountLocked+req.FeeLocked)

		_, err = f.Keeper.Claim(f.Ctx, types.MsgClaim{
			Solver:       solver.String(),
			Payer:        payer.String(),
			RequestId:    1,
			Bond:         bond,
			SolverPubkey: make([]byte, types.ClientPubkeyLen),
			ResealJobId:  101,
		})
		require.NoError(t, err)

		if settleInstead {
			payout, err := f.Keeper.Settle(f.Ctx, types.MsgSettle{
				Relayer:      owner.String(),
				Payer:        payer.String(),
				RequestId:    1,
				DestTxHash:   make([]byte, 32),
				EvidenceHash: make([]byte, 32),
			})
			require.NoError(t, err)
			require.Equal(t, amount, payout)

			require.Equal(t, amount, f.Balance(solver, "uatom"))
			require.Equal(t, bond, f.Balance(solver, "uveil"))
			require.Equal(t, uint64(0), f.Balance(f.Keeper.GetModuleAddress(), "uatom"))
			require.Equal(t, uint64(0), f.Balance(f.Keeper.GetModuleAddress(), "uveil"))
		} else {
			f.Ctx = f.Ctx.WithBlockTime(f.Ctx.BlockTime().Add(3601 * time.Second))
			slashed, refund, err := f.Keeper.ReleaseExpiredClaim(f.Ctx, types.MsgReleaseExpiredClaim{
				Caller:    owner.String(),
				Payer:     payer.String(),
				RequestId: 1,
			})
			require.NoError(t, err)
			require.Equal(t, bond, slashed+refund)

			require.Equal(t, slashed, f.Balance(owner, "uveil"))
			require.Equal(t, refund, f.Balance(solver, "uveil"))
			// the escrow stays put for the next claimant
			require.Equal(t, amount, f.Balance(f.Keeper.GetModuleAddress(), "uatom"))
			require.Equal(t, uint64(0), f.Balance(f.Keeper.GetModuleAddress(), "uveil"))
		}
	})
}
