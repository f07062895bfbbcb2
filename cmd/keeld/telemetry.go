package main

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/keel-chain/keel/app"
)

const (
	defaultMetricsPort = 36660
	defaultHealthPort  = 36661
	defaultRPCAddress  = "http://127.0.0.1:26657"
)

// resolveNodeHome returns the node home directory, honoring KEEL_HOME and
// the --home flag when present.
func resolveNodeHome(args []string) string {
	if home := os.Getenv("KEEL_HOME"); home != "" {
		return home
	}

	for i, arg := range args {
		if strings.HasPrefix(arg, "--home=") {
			return strings.SplitN(arg, "=", 2)[1]
		}
		if arg == "--home" && i+1 < len(args) {
			return args[i+1]
		}
	}

	return app.DefaultNodeHome
}

// loadTelemetryPorts reads the metrics and health ports from app.toml or
// environment variables, falling back to defaults.
func loadTelemetryPorts(home string) (int, int) {
	metricsPort := defaultMetricsPort
	healthPort := defaultHealthPort

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(filepath.Join(home, "config", "app.toml"))
	if err := v.ReadInConfig(); err == nil {
		if p := v.GetInt("telemetry.metrics-port"); p > 0 {
			metricsPort = p
		}
		if p := v.GetInt("telemetry.health-port"); p > 0 {
			healthPort = p
		}
	}

	if p := parsePort(os.Getenv("KEEL_TELEMETRY_METRICS_PORT")); p > 0 {
		metricsPort = p
	}
	if p := parsePort(os.Getenv("KEEL_TELEMETRY_HEALTH_PORT")); p > 0 {
		healthPort = p
	}

	return metricsPort, healthPort
}

func parsePort(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	port, err := strconv.Atoi(value)
	if err != nil || port <= 0 || port > 65535 {
		return 0
	}

	return port
}

// resolveRPCAddress chooses the CometBFT RPC endpoint used by the health
// checker: KEEL_RPC_ENDPOINT first, then config.toml's rpc.laddr.
func resolveRPCAddress(home string) string {
	if env := os.Getenv("KEEL_RPC_ENDPOINT"); env != "" {
		return env
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(filepath.Join(home, "config", "config.toml"))
	if err := v.ReadInConfig(); err == nil {
		if hostPort := rpcHostPort(v.GetString("rpc.laddr")); hostPort != "" {
			return fmt.Sprintf("http://%s", hostPort)
		}
	}

	return defaultRPCAddress
}

func rpcHostPort(laddr string) string {
	hostPort := strings.TrimSpace(laddr)
	if hostPort == "" {
		return ""
	}

	if strings.Contains(hostPort, "://") {
		if parsed, err := url.Parse(hostPort); err == nil && parsed.Host != "" {
			hostPort = parsed.Host
		}
	}

	host, port, err := net.SplitHostPort(hostPort)
	if err != nil {
		return hostPort
	}

	// A wildcard listen address is not a dialable probe target.
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}

	return net.JoinHostPort(host, port)
}
