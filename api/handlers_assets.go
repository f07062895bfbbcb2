package api

import (
	"net/http"

	"cosmossdk.io/math"
	"github.com/gin-gonic/gin"

	settlementtypes "github.com/keel-chain/keel/x/settlement/types"
)

func (s *Server) assetResponse(listing settlementtypes.AssetListing) AssetResponse {
	return AssetResponse{
		Denom:        listing.Denom,
		Issuer:       listing.Issuer,
		CircuitID:    listing.CircuitID,
		PricePerUnit: listing.PricePerUnit.String(),
		Active:       listing.Active,
		Inventory:    s.market.Inventory(listing.Denom).String(),
	}
}

// handleGetAssets lists every asset, active or not.
func (s *Server) handleGetAssets(c *gin.Context) {
	listings := s.market.Listings()
	assets := make([]AssetResponse, 0, len(listings))
	for _, listing := range listings {
		assets = append(assets, s.assetResponse(listing))
	}
	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

// handleGetAsset returns one listing by denom.
func (s *Server) handleGetAsset(c *gin.Context) {
	denom := c.Param("denom")
	listing, found := s.market.Listing(denom)
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "asset not listed: " + denom})
		return
	}
	c.JSON(http.StatusOK, s.assetResponse(listing))
}

// handleGetQuote prices a prospective settlement without reserving
// anything. Query params: asset, amount.
func (s *Server) handleGetQuote(c *gin.Context) {
	denom := c.Query("asset")
	if denom == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "asset query parameter is required"})
		return
	}
	amount, ok := math.NewIntFromString(c.Query("amount"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must be an integer"})
		return
	}

	quote, err := s.market.Quote(denom, amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, QuoteResponse{
		QuoteID:    quote.QuoteID,
		AssetDenom: quote.AssetDenom,
		Amount:     quote.Amount.String(),
		TotalPrice: quote.TotalPrice.String(),
		Fee:        quote.Fee.String(),
		Expiry:     quote.Expiry,
	})
}
