package main

import (
	"os"

	svrcmd "github.com/cosmos/cosmos-sdk/server/cmd"

	"github.com/keel-chain/keel/app"
	"github.com/keel-chain/keel/cmd/keeld/cmd"
)

func main() {
	home := resolveNodeHome(os.Args[1:])
	metricsPort, healthPort := loadTelemetryPorts(home)
	rpcEndpoint := resolveRPCAddress(home)

	// Sidecar servers run alongside the node process: one for Prometheus
	// scraping, one for orchestrator health probes.
	StartMetricsServer(metricsPort)
	StartHealthServer(healthPort, NewRPCHealthChecker(rpcEndpoint))

	rootCmd := cmd.NewRootCmd()

	if err := svrcmd.Execute(rootCmd, "", app.DefaultNodeHome); err != nil {
		os.Exit(1)
	}
}
