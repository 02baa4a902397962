package server

import (
	"yomu/internal/disambig"
	"yomu/internal/handlers"
	"yomu/internal/handlers/api"
	"yomu/internal/metrics"
	"yomu/internal/middleware"
	"yomu/internal/selection"
)

// Deps are the collaborators the routes are wired to.
type Deps struct {
	// Service analyzes queries for POST /api/lookup.
	Service api.Looker
	// Reader is what the reader UI submits queries to: the service itself,
	// or a gateway client when a remote lookup endpoint is configured.
	Reader   selection.Looker
	Resolver *disambig.Resolver
	Registry *selection.Registry
	Health   map[string]api.Pinger
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	// Initialize middleware
	readerMiddleware := middleware.NewReaderMiddleware(deps.Registry)

	// Initialize handlers
	readerHandler := handlers.NewReaderHandler(deps.Reader, deps.Resolver, s.Cfg)
	lookupHandler := api.NewLookupHandler(deps.Service)
	healthHandler := api.NewHealthHandler(deps.Health)
	probeHandler := handlers.NewProbeHandler(deps.Health["database"])

	// Kubernetes probes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	// JSON API
	s.App.Post("/api/lookup", lookupHandler.Lookup)
	s.App.Get("/api/health", healthHandler.Check)
	s.App.Get("/metrics", metrics.Handler())

	// Reader UI
	s.App.Get("/", readerMiddleware.Attach, readerHandler.Index)
	s.App.Post("/lookup", readerMiddleware.Attach, readerHandler.Submit)
	s.App.Post("/words/:index", readerMiddleware.Attach, readerHandler.Select)
	s.App.Delete("/selection", readerMiddleware.Attach, readerHandler.Clear)
}
