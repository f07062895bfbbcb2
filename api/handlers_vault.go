package api

import (
	"net/http"

	"cosmossdk.io/math"
	"github.com/gin-gonic/gin"
)

// handleGetVault returns the aggregate lending-vault accounting.
func (s *Server) handleGetVault(c *gin.Context) {
	vault := s.vault.VaultStats()

	idle := vault.TotalDeposits.Sub(vault.TotalBorrowed)
	utilization := math.ZeroInt()
	if vault.TotalDeposits.IsPositive() {
		utilization = vault.TotalBorrowed.MulRaw(10_000).Quo(vault.TotalDeposits)
	}

	c.JSON(http.StatusOK, VaultResponse{
		TotalShares:    vault.TotalShares.String(),
		TotalDeposits:  vault.TotalDeposits.String(),
		TotalBorrowed:  vault.TotalBorrowed.String(),
		IdleLiquidity:  idle.String(),
		UtilizationBps: utilization.String(),
	})
}
