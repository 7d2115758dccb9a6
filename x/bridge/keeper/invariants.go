package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veilbridge/veil/x/bridge/types"
)

// RegisterInvariants registers the bridge module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "custody-backing", CustodyBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "locked-accounting", LockedAccountingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "request-shape", RequestShapeInvariant(k))
}

// CustodyBackingInvariant checks that the module account holds at least
// the tracked locked value in every denom. Escrow and bonds must never
// exceed what the bank says the module owns.
func CustodyBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		moduleAddr := k.GetModuleAddress()

		var msg string
		broken := false
		k.IterateLockedValues(ctx, func(denom string, locked uint64) bool {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if balance.Amount.Uint64() < locked {
				broken = true
				msg += fmt.Sprintf(
					"\tdenom %s: module holds %s, records lock %d\n",
					denom, balance.Amount, locked,
				)
			}
			return false
		})

		return sdk.FormatInvariant(
			types.ModuleName, "custody-backing",
			fmt.Sprintf("module account balance below tracked locked value\n%s", msg),
		), broken
	}
}

// LockedAccountingInvariant checks that the per-denom accumulators
// equal the sums over live request records: open escrow plus
// outstanding bonds, denom by denom.
func LockedAccountingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		expected := make(map[string]uint64)

		var iterErr error
		_ = k.IterateRequests(ctx, func(req types.BridgeRequest) bool {
			if req.Finalized {
				return false
			}
			total, err := SafeAddUint64(req.AmountLocked, req.FeeLocked)
			if err != nil {
				iterErr = err
				return true
			}
			expected[req.AssetDenom] += total
			if req.Claimed && req.BondAmount > 0 {
				cfg, err := k.GetConfig(ctx)
				if err != nil {
					iterErr = err
					return true
				}
				expected[cfg.BondDenom] += req.BondAmount
			}
			return false
		})
		if iterErr != nil {
			return sdk.FormatInvariant(
				types.ModuleName, "locked-accounting", iterErr.Error(),
			), true
		}

		tracked := make(map[string]uint64)
		k.IterateLockedValues(ctx, func(denom string, amount uint64) bool {
			tracked[denom] = amount
			return false
		})

		var msg string
		broken := false
		for denom, want := range expected {
			if tracked[denom] != want {
				broken = true
				msg += fmt.Sprintf("\tdenom %s: tracked %d, records sum to %d\n", denom, tracked[denom], want)
			}
		}
		for denom, got := range tracked {
			if _, ok := expected[denom]; !ok && got != 0 {
				broken = true
				msg += fmt.Sprintf("\tdenom %s: tracked %d with no live records\n", denom, got)
			}
		}

		return sdk.FormatInvariant(
			types.ModuleName, "locked-accounting",
			fmt.Sprintf("locked accumulators diverge from request records\n%s", msg),
		), broken
	}
}

// RequestShapeInvariant checks structural consistency of every stored
// request: terminal records carry no claim state, claimed records carry
// a solver and bond.
func RequestShapeInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		broken := false
		_ = k.IterateRequests(ctx, func(req types.BridgeRequest) bool {
			if err := req.Validate(); err != nil {
				broken = true
				msg += fmt.Sprintf("\t%v\n", err)
			}
			return false
		})

		return sdk.FormatInvariant(
			types.ModuleName, "request-shape",
			fmt.Sprintf("malformed request records\n%s", msg),
		), broken
	}
}
