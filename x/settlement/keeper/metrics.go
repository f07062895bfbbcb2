package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SettlementMetrics holds all Prometheus metrics for the settlement module
type SettlementMetrics struct {
	SettlementsTotal prometheus.Counter
	SettlementVolume prometheus.Counter
	FeesCollected    prometheus.Counter
	Failures         *prometheus.CounterVec
}

var (
	settlementMetricsOnce sync.Once
	settlementMetrics     *SettlementMetrics
)

// NewSettlementMetrics creates and registers settlement metrics (singleton pattern)
func NewSettlementMetrics() *SettlementMetrics {
	settlementMetricsOnce.Do(func() {
		settlementMetrics = &SettlementMetrics{
			SettlementsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keel",
					Subsystem: "settlement",
					Name:      "settlements_total",
					Help:      "Total settlements executed",
				},
			),
			SettlementVolume: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keel",
					Subsystem: "settlement",
					Name:      "settlement_volume_total",
					Help:      "Total settlement volume in payment base units",
				},
			),
			FeesCollected: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keel",
					Subsystem: "settlement",
					Name:      "fees_collected_total",
					Help:      "Total protocol fees collected",
				},
			),
			Failures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "keel",
					Subsystem: "settlement",
					Name:      "failures_total",
					Help:      "Settlement failures by reason",
				},
				[]string{"reason"},
			),
		}
	})
	return settlementMetrics
}

// GetSettlementMetrics returns the singleton settlement metrics instance
func GetSettlementMetrics() *SettlementMetrics {
	if settlementMetrics == nil {
		return NewSettlementMetrics()
	}
	return settlementMetrics
}
