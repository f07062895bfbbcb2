package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CreditMetrics holds all Prometheus metrics for the credit module
type CreditMetrics struct {
	VaultDeposits      prometheus.Counter
	VaultWithdrawals   prometheus.Counter
	VaultTotalDeposits prometheus.Gauge

	CollateralStaked   prometheus.Counter
	CollateralUnstaked prometheus.Counter

	BorrowsTotal      prometheus.Counter
	RepaysTotal       prometheus.Counter
	TotalBorrowed     prometheus.Gauge
	InterestCollected prometheus.Counter

	LiquidationsTotal prometheus.Counter
}

var (
	creditMetricsOnce sync.Once
	creditMetrics     *CreditMetrics
)

// NewCreditMetrics creates and registers credit metrics (singleton pattern)
func NewCreditMetrics() *CreditMetrics {
	creditMetricsOnce.Do(func() {
		creditMetrics = &CreditMetrics{
			VaultDeposits: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keel",
					Subsystem: "credit",
					Name:      "vault_deposits_total",
					Help:      "Total number of vault deposits",
				},
			),
			VaultWithdrawals: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keel",
					Subsystem: "credit",
					Name:      "vault_withdrawals_total",
					Help:      "Total number of vault withdrawals",
				},
			),
			VaultTotalDeposits: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "keel",
					Subsystem: "credit",
					Name:      "vault_total_deposits",
					Help:      "Current vault deposit base in base units",
				},
			),
			CollateralStaked: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keel",
					Subsystem: "credit",
					Name:      "collateral_staked_total",
					Help:      "Total collateral staked in base units",
				},
			),
			CollateralUnstaked: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keel",
					Subsystem: "credit",
					Name:      "collateral_unstaked_total",
					Help:      "Total collateral released in base units",
				},
			),
			BorrowsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keel",
					Subsystem: "credit",
					Name:      "borrows_total",
					Help:      "Total number of credit draws",
				},
			),
			RepaysTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keel",
					Subsystem: "credit",
					Name:      "repays_total",
					Help:      "Total number of repayments",
				},
			),
			TotalBorrowed: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "keel",
					Subsystem: "credit",
					Name:      "total_borrowed",
					Help:      "Current outstanding principal in base units",
				},
			),
			InterestCollected: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keel",
					Subsystem: "credit",
					Name:      "interest_collected_total",
					Help:      "Total interest repaid into the vault",
				},
			),
			LiquidationsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keel",
					Subsystem: "credit",
					Name:      "liquidations_total",
					Help:      "Total number of positions liquidated",
				},
			),
		}
	})
	return creditMetrics
}

// GetCreditMetrics returns the singleton credit metrics instance
func GetCreditMetrics() *CreditMetrics {
	if creditMetrics == nil {
		return NewCreditMetrics()
	}
	return creditMetrics
}
