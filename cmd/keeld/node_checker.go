package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// RPCHealthChecker implements NodeHealthChecker against the CometBFT RPC.
type RPCHealthChecker struct {
	rpcAddr string
	client  *http.Client
}

func NewRPCHealthChecker(rpcAddr string) *RPCHealthChecker {
	return &RPCHealthChecker{
		rpcAddr: rpcAddr,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (c *RPCHealthChecker) get(path string, out any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rpcAddr+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("rpc unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rpc returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// CheckRPC verifies the RPC endpoint answers at all.
func (c *RPCHealthChecker) CheckRPC() error {
	return c.get("/health", nil)
}

// CheckSync reports whether the node is still catching up, and at what height.
func (c *RPCHealthChecker) CheckSync() (bool, int64, error) {
	var status struct {
		Result struct {
			SyncInfo struct {
				CatchingUp        bool   `json:"catching_up"`
				LatestBlockHeight string `json:"latest_block_height"`
			} `json:"sync_info"`
		} `json:"result"`
	}

	if err := c.get("/status", &status); err != nil {
		return false, 0, err
	}

	height, _ := strconv.ParseInt(status.Result.SyncInfo.LatestBlockHeight, 10, 64)

	return status.Result.SyncInfo.CatchingUp, height, nil
}

// PeerCount returns the number of connected peers.
func (c *RPCHealthChecker) PeerCount() (int, error) {
	var netInfo struct {
		Result struct {
			NPeers string `json:"n_peers"`
		} `json:"result"`
	}

	if err := c.get("/net_info", &netInfo); err != nil {
		return 0, err
	}

	peers, _ := strconv.Atoi(netInfo.Result.NPeers)

	return peers, nil
}
