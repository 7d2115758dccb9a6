package types

import (
	"cosmossdk.io/math"
)

// ComputeFee splits a gross deposit amount into (net, fee) under the
// configured bounds. The bps product is taken over math.Int so the
// intermediate amount*fee_bps cannot wrap. Order matters: the bps fee
// is first raised to MinFee, then lowered to MaxFee, and only then
// capped at half the amount, so net stays positive for any amount > 1.
//
// Pure and total. amount == 0 yields (0, 0); callers reject zero
// deposits before consulting the policy.
func ComputeFee(amount uint64, cfg BridgeConfig) (net, fee uint64) {
	if amount == 0 {
		return 0, 0
	}

	feeInt := math.NewIntFromUint64(amount).
		MulRaw(int64(cfg.FeeBps)).
		QuoRaw(MaxBps)

	if feeInt.LT(math.NewIntFromUint64(cfg.MinFee)) {
		feeInt = math.NewIntFromUint64(cfg.MinFee)
	}
	if feeInt.GT(math.NewIntFromUint64(cfg.MaxFee)) {
		feeInt = math.NewIntFromUint64(cfg.MaxFee)
	}

	fee = feeInt.Uint64()
	if fee >= amount {
		fee = amount / 2
	}

	return amount - fee, fee
}
