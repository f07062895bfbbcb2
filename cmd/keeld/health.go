package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cosmos/cosmos-sdk/version"
)

var (
	startTime = time.Now()

	healthCheckTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keel_health_check_total",
			Help: "Total number of health check requests",
		},
		[]string{"endpoint", "status"},
	)

	healthCheckDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "keel_health_check_duration_seconds",
			Help:    "Health check request duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"endpoint"},
	)

	nodeHealthy = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "keel_node_healthy",
			Help: "1 if the node RPC answers and the node is not catching up",
		},
	)
)

// NodeHealthChecker reports the liveness of the underlying consensus node.
type NodeHealthChecker interface {
	CheckRPC() error
	CheckSync() (catchingUp bool, height int64, err error)
	PeerCount() (int, error)
}

// HealthServer serves liveness and readiness probes for orchestrators.
// Results are cached briefly so aggressive probe intervals do not hammer
// the node RPC.
type HealthServer struct {
	server  *http.Server
	checker NodeHealthChecker

	mu          sync.Mutex
	cached      *readinessReport
	lastChecked time.Time
	cacheTTL    time.Duration
}

type checkResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type readinessReport struct {
	Status string                 `json:"status"`
	Checks map[string]checkResult `json:"checks"`
}

type detailedReport struct {
	Status        string                 `json:"status"`
	UptimeSeconds int64                  `json:"uptime_seconds"`
	Version       string                 `json:"version"`
	Checks        map[string]checkResult `json:"checks"`
	BlockHeight   int64                  `json:"block_height"`
	Peers         int                    `json:"peers"`
	Goroutines    int                    `json:"goroutines"`
	MemoryMB      uint64                 `json:"memory_mb"`
}

// StartHealthServer starts the probe HTTP server on the given port.
func StartHealthServer(port int, checker NodeHealthChecker) *HealthServer {
	hs := &HealthServer{
		checker:  checker,
		cacheTTL: 5 * time.Second,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", hs.instrument("health", hs.handleLiveness))
	mux.HandleFunc("/health/ready", hs.instrument("ready", hs.handleReadiness))
	mux.HandleFunc("/health/detailed", hs.instrument("detailed", hs.handleDetailed))

	hs.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	go func() {
		if err := hs.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("health server error: %v\n", err)
		}
	}()

	return hs
}

func (hs *HealthServer) instrument(endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		handler(rw, r)

		healthCheckDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		outcome := "ok"
		if rw.status >= http.StatusInternalServerError {
			outcome = "error"
		} else if rw.status >= http.StatusBadRequest {
			outcome = "unhealthy"
		}
		healthCheckTotal.WithLabelValues(endpoint, outcome).Inc()
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// handleLiveness answers as long as the process is up. It never touches
// the node RPC so a stalled node does not get the process killed.
func (hs *HealthServer) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (hs *HealthServer) handleReadiness(w http.ResponseWriter, _ *http.Request) {
	report := hs.readiness()

	status := http.StatusOK
	if report.Status != "ready" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

func (hs *HealthServer) handleDetailed(w http.ResponseWriter, _ *http.Request) {
	report := hs.readiness()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	var height int64
	var peers int
	if _, h, err := hs.checker.CheckSync(); err == nil {
		height = h
	}
	if p, err := hs.checker.PeerCount(); err == nil {
		peers = p
	}

	writeJSON(w, http.StatusOK, detailedReport{
		Status:        report.Status,
		UptimeSeconds: int64(time.Since(startTime).Seconds()),
		Version:       version.Version,
		Checks:        report.Checks,
		BlockHeight:   height,
		Peers:         peers,
		Goroutines:    runtime.NumGoroutine(),
		MemoryMB:      mem.Alloc / 1024 / 1024,
	})
}

func (hs *HealthServer) readiness() *readinessReport {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	if hs.cached != nil && time.Since(hs.lastChecked) < hs.cacheTTL {
		return hs.cached
	}

	checks := make(map[string]checkResult)
	ready := true

	if err := hs.checker.CheckRPC(); err != nil {
		checks["rpc"] = checkResult{Status: "fail", Message: err.Error()}
		ready = false
	} else {
		checks["rpc"] = checkResult{Status: "pass"}
	}

	if catchingUp, height, err := hs.checker.CheckSync(); err != nil {
		checks["sync"] = checkResult{Status: "fail", Message: err.Error()}
		ready = false
	} else if catchingUp {
		checks["sync"] = checkResult{Status: "fail", Message: fmt.Sprintf("catching up at height %d", height)}
		ready = false
	} else {
		checks["sync"] = checkResult{Status: "pass", Message: fmt.Sprintf("height %d", height)}
	}

	report := &readinessReport{Status: "ready", Checks: checks}
	if !ready {
		report.Status = "not_ready"
		nodeHealthy.Set(0)
	} else {
		nodeHealthy.Set(1)
	}

	hs.cached = report
	hs.lastChecked = time.Now()

	return report
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
