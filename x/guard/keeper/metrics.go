package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GuardMetrics holds all Prometheus metrics for the guard module
type GuardMetrics struct {
	InferencesVerified      prometheus.Counter
	SettlementsAuthorized   prometheus.Counter
	VerifiedActionsExecuted prometheus.Counter
	ProofFailures           prometheus.Counter
}

var (
	guardMetricsOnce sync.Once
	guardMetrics     *GuardMetrics
)

// NewGuardMetrics creates and registers guard metrics (singleton pattern)
func NewGuardMetrics() *GuardMetrics {
	guardMetricsOnce.Do(func() {
		guardMetrics = &GuardMetrics{
			InferencesVerified: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keel",
					Subsystem: "guard",
					Name:      "inferences_verified_total",
					Help:      "Total baseline inferences verified",
				},
			),
			SettlementsAuthorized: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keel",
					Subsystem: "guard",
					Name:      "settlements_authorized_total",
					Help:      "Total settlement compliance proofs authorized",
				},
			),
			VerifiedActionsExecuted: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keel",
					Subsystem: "guard",
					Name:      "verified_actions_executed_total",
					Help:      "Total strict-mode actions executed",
				},
			),
			ProofFailures: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keel",
					Subsystem: "guard",
					Name:      "proof_failures_total",
					Help:      "Total proof verification failures",
				},
			),
		}
	})
	return guardMetrics
}

// GetGuardMetrics returns the singleton guard metrics instance
func GetGuardMetrics() *GuardMetrics {
	if guardMetrics == nil {
		return NewGuardMetrics()
	}
	return guardMetrics
}
