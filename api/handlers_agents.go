package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	sdk "github.com/cosmos/cosmos-sdk/types"

	registrytypes "github.com/keel-chain/keel/x/registry/types"
)

// handleGetAgentStatus aggregates passport, eligibility and credit
// position for one agent. Unregistered agents still get a 200 with
// Registered=false so callers can poll before onboarding.
func (s *Server) handleGetAgentStatus(c *gin.Context) {
	agent, err := sdk.AccAddressFromBech32(c.Param("addr"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid agent address"})
		return
	}

	resp := AgentStatusResponse{Address: agent.String()}

	passport, err := s.agents.Passport(agent)
	switch {
	case err == nil:
		resp.Registered = true
		resp.Active = passport.Active
		resp.Reputation = passport.Reputation
		resp.VerifiedUntil = passport.VerifiedUntil
		resp.SettlementCount = passport.SettlementCount
		resp.LifetimeVolume = passport.LifetimeVolume.String()
	case errors.Is(err, registrytypes.ErrPassportNotFound):
		resp.LifetimeVolume = "0"
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	resp.Eligible, resp.Reason = s.agents.Eligibility(agent)
	resp.Verified = s.agents.Verified(agent)
	resp.CreditLimit = s.agents.CreditLimit(agent).String()
	resp.Debt = s.agents.Debt(agent).String()
	if hf, hasDebt := s.agents.HealthFactor(agent); hasDebt {
		resp.HealthFactor = hf.String()
	}

	c.JSON(http.StatusOK, resp)
}
