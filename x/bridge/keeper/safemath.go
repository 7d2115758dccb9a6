package keeper

import (
	"math"

	sdkmath "cosmossdk.io/math"

	"github.com/veilbridge/veil/x/bridge/types"
)

// SafeAddUint64 adds two uint64 values with overflow checking
func SafeAddUint64(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, types.ErrMathOverflow.Wrap("uint64 addition overflow")
	}
	return a + b, nil
}

// SafeSubUint64 subtracts b from a with underflow checking
func SafeSubUint64(a, b uint64) (uint64, error) {
	if b > a {
		return 0, types.ErrMathOverflow.Wrapf("cannot subtract %d from %d", b, a)
	}
	return a - b, nil
}

// SafeAddInt64 adds two int64 values with overflow checking. Used for
// deadline arithmetic over unix timestamps.
func SafeAddInt64(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, types.ErrMathOverflow.Wrap("int64 addition overflow")
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, types.ErrMathOverflow.Wrap("int64 addition underflow")
	}
	return a + b, nil
}

// SafeBpsShare computes value * bps / 10_000 through a wide
// intermediate so the product cannot wrap.
func SafeBpsShare(value uint64, bps uint32) (uint64, error) {
	if bps > types.MaxBps {
		return 0, types.ErrMathOverflow.Wrapf("bps %d exceeds %d", bps, types.MaxBps)
	}
	share := sdkmath.NewIntFromUint64(value).
		MulRaw(int64(bps)).
		QuoRaw(types.MaxBps)
	if !share.IsUint64() {
		return 0, types.ErrMathOverflow.Wrap("bps share exceeds uint64")
	}
	return share.Uint64(), nil
}
