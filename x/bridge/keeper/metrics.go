package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BridgeMetrics holds all Prometheus metrics for the bridge module
type BridgeMetrics struct {
	// Deposit metrics
	DepositsTotal *prometheus.CounterVec
	DepositVolume *prometheus.CounterVec
	FeesCharged   *prometheus.CounterVec

	// Claim metrics
	ClaimsTotal    prometheus.Counter
	ClaimsReleased prometheus.Counter
	BondsLocked    *prometheus.CounterVec
	BondsSlashed   *prometheus.CounterVec

	// Settlement metrics
	SettlementsTotal prometheus.Counter
	PayoutVolume     *prometheus.CounterVec

	// Computation job metrics
	JobsQueued   *prometheus.CounterVec
	JobsResolved *prometheus.CounterVec

	// Custody metrics
	LockedValue *prometheus.GaugeVec
}

var (
	bridgeMetricsOnce sync.Once
	bridgeMetrics     *BridgeMetrics
)

// NewBridgeMetrics creates and registers bridge metrics (singleton pattern)
func NewBridgeMetrics() *BridgeMetrics {
	bridgeMetricsOnce.Do(func() {
		bridgeMetrics = &BridgeMetrics{
			DepositsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "bridge",
					Name:      "deposits_total",
					Help:      "Total bridge deposits locked",
				},
				[]string{"denom"},
			),
			DepositVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "bridge",
					Name:      "deposit_volume_total",
					Help:      "Total gross value deposited",
				},
				[]string{"denom"},
			),
			FeesCharged: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "bridge",
					Name:      "fees_charged_total",
					Help:      "Total fees withheld from deposits",
				},
				[]string{"denom"},
			),
			ClaimsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "bridge",
					Name:      "claims_total",
					Help:      "Total solver claims accepted",
				},
			),
			ClaimsReleased: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "bridge",
					Name:      "claims_released_total",
					Help:      "Total expired claims released",
				},
			),
			BondsLocked: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "bridge",
					Name:      "bonds_locked_total",
					Help:      "Total solver bond value escrowed",
				},
				[]string{"denom"},
			),
			BondsSlashed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "bridge",
					Name:      "bonds_slashed_total",
					Help:      "Total bond value slashed on expiry",
				},
				[]string{"denom"},
			),
			SettlementsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "bridge",
					Name:      "settlements_total",
					Help:      "Total requests settled",
				},
			),
			PayoutVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "bridge",
					Name:      "payout_volume_total",
					Help:      "Total value paid to solvers on settlement",
				},
				[]string{"denom"},
			),
			JobsQueued: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "bridge",
					Name:      "computation_jobs_queued_total",
					Help:      "Total computation jobs queued",
				},
				[]string{"kind"},
			),
			JobsResolved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "bridge",
					Name:      "computation_jobs_resolved_total",
					Help:      "Total computation job resolutions by outcome",
				},
				[]string{"kind", "status"},
			),
			LockedValue: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "veil",
					Subsystem: "bridge",
					Name:      "locked_value",
					Help:      "Value currently held by the module account per denom",
				},
				[]string{"denom"},
			),
		}
	})
	return bridgeMetrics
}
