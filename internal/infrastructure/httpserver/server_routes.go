package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")

	areas := api.Group("/areas")
	areas.GET("", s.listAreas)
	areas.GET("/groups", s.groupAreas)
	areas.GET("/:id", s.getArea)
	areas.DELETE("/cache", s.refreshAreas, s.middleware.ServiceAuth.RequireServiceToken())

	api.POST("/account-request", s.submitAccountRequest, s.middleware.RateLimit.PerClientIP())
	api.GET("/accounts", s.listAccounts, s.middleware.ServiceAuth.RequireServiceToken())
}
