package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keel-chain/keel/testutil/keeper"
	credittypes "github.com/keel-chain/keel/x/credit/types"
	settlementtypes "github.com/keel-chain/keel/x/settlement/types"
)

type gateway struct {
	f      *keepertest.Fixture
	server *Server
	issuer sdk.AccAddress
}

func setupGateway(t *testing.T) *gateway {
	f := keepertest.NewFixture(t)
	issuer := sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())

	require.NoError(t, f.Settlement.ListAsset(f.Ctx, settlementtypes.AssetListing{
		Denom:        "urwagold",
		Issuer:       issuer.String(),
		CircuitID:    "rwa-compliance-v1",
		PricePerUnit: math.NewInt(1_000),
	}))
	f.FundAccount(t, issuer, "urwagold", math.NewInt(500))
	require.NoError(t, f.Settlement.RestockInventory(f.Ctx, issuer, "urwagold", math.NewInt(500)))

	backend := NewKeeperBackend(
		func() sdk.Context { return f.Ctx },
		f.Registry, f.Credit, f.Settlement,
	)
	server := NewServer(backend, backend, backend, nil)
	return &gateway{f: f, server: server, issuer: issuer}
}

func (g *gateway) get(t *testing.T, path string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	g.server.Router().ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestHealthEndpoint(t *testing.T) {
	g := setupGateway(t)

	rec, body := g.get(t, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "healthy", body["status"])
	require.Equal(t, false, body["paused"])
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	g.f.Settlement.SetPaused(g.f.Ctx, true)
	_, body = g.get(t, "/health")
	require.Equal(t, true, body["paused"])
}

func TestGetAssets(t *testing.T) {
	g := setupGateway(t)

	rec, body := g.get(t, "/api/v1/assets")
	require.Equal(t, http.StatusOK, rec.Code)

	assets := body["assets"].([]any)
	require.Len(t, assets, 1)
	asset := assets[0].(map[string]any)
	require.Equal(t, "urwagold", asset["denom"])
	require.Equal(t, "1000", asset["price_per_unit"])
	require.Equal(t, "500", asset["inventory"])
	require.Equal(t, true, asset["active"])
}

func TestGetAsset(t *testing.T) {
	g := setupGateway(t)

	rec, body := g.get(t, "/api/v1/assets/urwagold")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, g.issuer.String(), body["issuer"])

	rec, _ = g.get(t, "/api/v1/assets/urwasilver")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetQuote(t *testing.T) {
	g := setupGateway(t)

	rec, body := g.get(t, "/api/v1/quote?asset=urwagold&amount=4")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "4000", body["total_price"])
	require.Equal(t, "2", body["fee"])
	require.NotEmpty(t, body["quote_id"])

	rec, _ = g.get(t, "/api/v1/quote?amount=4")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = g.get(t, "/api/v1/quote?asset=urwagold&amount=four")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = g.get(t, "/api/v1/quote?asset=urwasilver&amount=4")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAgentStatus(t *testing.T) {
	g := setupGateway(t)
	f := g.f
	agent := sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())

	// Unknown agents report as unregistered rather than erroring.
	rec, body := g.get(t, "/api/v1/agents/"+agent.String()+"/status")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, body["registered"])
	require.Equal(t, false, body["eligible"])
	require.NotEmpty(t, body["reason"])

	keepertest.RegisterTestAgent(t, f.Registry, f.Ctx, agent)
	f.FundAccount(t, agent, credittypes.DefaultParams().PaymentDenom, math.NewInt(2_000_000))
	require.NoError(t, f.Credit.StakeCollateral(f.Ctx, agent, math.NewInt(1_000_000)))

	rec, body = g.get(t, "/api/v1/agents/"+agent.String()+"/status")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, body["registered"])
	require.Equal(t, true, body["eligible"])
	require.Equal(t, float64(100), body["reputation"])
	require.Equal(t, "5000000", body["credit_limit"])
	require.Equal(t, "0", body["debt"])
	_, hasHealth := body["health_factor"]
	require.False(t, hasHealth)

	rec, _ = g.get(t, "/api/v1/agents/not-an-address/status")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAgentStatus_WithDebt(t *testing.T) {
	g := setupGateway(t)
	f := g.f
	denom := credittypes.DefaultParams().PaymentDenom

	lender := sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
	f.FundAccount(t, lender, denom, math.NewInt(10_000_000))
	_, err := f.Credit.Deposit(f.Ctx, lender, math.NewInt(10_000_000))
	require.NoError(t, err)

	agent := sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
	keepertest.RegisterTestAgent(t, f.Registry, f.Ctx, agent)
	f.FundAccount(t, agent, denom, math.NewInt(1_000_000))
	require.NoError(t, f.Credit.StakeCollateral(f.Ctx, agent, math.NewInt(1_000_000)))
	_, err = f.Credit.Borrow(f.Ctx, agent, math.NewInt(500_000))
	require.NoError(t, err)

	_, body := g.get(t, "/api/v1/agents/"+agent.String()+"/status")
	require.Equal(t, "500000", body["debt"])
	// collateral 1_000_000 against debt 500_000 is a 20_000 bps health factor
	require.Equal(t, "20000", body["health_factor"])
}

func TestGetVault(t *testing.T) {
	g := setupGateway(t)
	f := g.f
	denom := credittypes.DefaultParams().PaymentDenom

	rec, body := g.get(t, "/api/v1/vault")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "0", body["total_deposits"])
	require.Equal(t, "0", body["utilization_bps"])

	lender := sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
	f.FundAccount(t, lender, denom, math.NewInt(4_000_000))
	_, err := f.Credit.Deposit(f.Ctx, lender, math.NewInt(4_000_000))
	require.NoError(t, err)

	agent := sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
	keepertest.RegisterTestAgent(t, f.Registry, f.Ctx, agent)
	f.FundAccount(t, agent, denom, math.NewInt(1_000_000))
	require.NoError(t, f.Credit.StakeCollateral(f.Ctx, agent, math.NewInt(1_000_000)))
	_, err = f.Credit.Borrow(f.Ctx, agent, math.NewInt(1_000_000))
	require.NoError(t, err)

	_, body = g.get(t, "/api/v1/vault")
	require.Equal(t, "4000000", body["total_deposits"])
	require.Equal(t, "1000000", body["total_borrowed"])
	require.Equal(t, "3000000", body["idle_liquidity"])
	require.Equal(t, "2500", body["utilization_bps"])
}
