package api

// registerRoutes registers the read-only v1 surface.
func (s *Server) registerRoutes() {
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/assets", s.handleGetAssets)
		v1.GET("/assets/:denom", s.handleGetAsset)
		v1.GET("/quote", s.handleGetQuote)
		v1.GET("/agents/:addr/status", s.handleGetAgentStatus)
		v1.GET("/vault", s.handleGetVault)
	}
}
