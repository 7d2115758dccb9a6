package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/veilbridge/veil/x/bridge/types"
)

func feeConfig(feeBps uint32, minFee, maxFee uint64) types.BridgeConfig {
	return types.BridgeConfig{
		FeeBps: feeBps,
		MinFee: minFee,
		MaxFee: maxFee,
	}
}

func TestComputeFeeBps(t *testing.T) {
	// 0.5% of 1_000_000 is 5_000, inside [10, 1_000_000] bounds.
	net, fee := types.ComputeFee(1_000_000, feeConfig(50, 10, 1_000_000))
	require.Equal(t, uint64(5_000), fee)
	require.Equal(t, uint64(995_000), net)
}

func TestComputeFeeMinFloor(t *testing.T) {
	// 0.5% of 100 is 0, raised to the 10 floor.
	net, fee := types.ComputeFee(100, feeConfig(50, 10, 1_000_000))
	require.Equal(t, uint64(10), fee)
	require.Equal(t, uint64(90), net)
}

func TestComputeFeeMaxCeiling(t *testing.T) {
	// 10% of 1_000_000 is 100_000, lowered to the 500 ceiling.
	net, fee := types.ComputeFee(1_000_000, feeConfig(1_000, 10, 500))
	require.Equal(t, uint64(500), fee)
	require.Equal(t, uint64(999_500), net)
}

func TestComputeFeeHalfCap(t *testing.T) {
	// MinFee exceeds the amount, so the fee falls back to amount/2.
	net, fee := types.ComputeFee(5, feeConfig(50, 10, 1_000_000))
	require.Equal(t, uint64(2), fee)
	require.Equal(t, uint64(3), net)
}

func TestComputeFeeDustAmounts(t *testing.T) {
	net, fee := types.ComputeFee(1, feeConfig(10_000, 0, 1_000_000))
	require.Equal(t, uint64(0), fee)
	require.Equal(t, uint64(1), net)

	net, fee = types.ComputeFee(0, feeConfig(50, 10, 1_000_000))
	require.Equal(t, uint64(0), fee)
	require.Equal(t, uint64(0), net)
}

func TestComputeFeeLargeAmountNoOverflow(t *testing.T) {
	// amount * fee_bps would wrap uint64; the wide intermediate must not.
	// A 100% bps fee still lands on the half-amount cap.
	amount := uint64(1) << 62
	net, fee := types.ComputeFee(amount, feeConfig(10_000, 0, amount))
	require.Equal(t, amount/2, fee)
	require.Equal(t, amount, net+fee)
}

func TestComputeFeeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		amount := rapid.Uint64().Draw(t, "amount")
		cfg := feeConfig(
			rapid.Uint32Range(0, types.MaxBps).Draw(t, "fee_bps"),
			rapid.Uint64().Draw(t, "min_fee"),
			rapid.Uint64().Draw(t, "max_fee"),
		)

		net, fee := types.ComputeFee(amount, cfg)

		require.Equal(t, amount, net+fee, "fee split must conserve the amount")
		if amount > 0 {
			require.Less(t, fee, amount, "fee never consumes the whole deposit")
		}
	})
}
