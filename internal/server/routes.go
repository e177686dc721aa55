package server

import (
	"github.com/nfrund/safebite/internal/handlers"
)

// RegisterRoutes sets up the routes that do not belong to a module.
func (s *Server) RegisterRoutes() {
	homeHandler := handlers.NewHomeHandler()
	healthHandler := handlers.NewHealthHandler(s.Deps.Catalog)

	s.E.GET("/", homeHandler.HomeGet)
	s.E.GET("/health", healthHandler.HealthGet)
}
