// Package api exposes the fracnet pipeline and scene store over HTTP.
//
// Routes:
//
//	GET    /healthz                       liveness probe
//	POST   /api/v1/scenes                 save a scene definition
//	GET    /api/v1/scenes                 list stored scenes
//	GET    /api/v1/scenes/{id}            fetch a stored scene
//	DELETE /api/v1/scenes/{id}            delete a stored scene
//	POST   /api/v1/scenes/{id}/compute    build and compute the network, returns statistics
//	GET    /api/v1/scenes/{id}/artifact   render one format (?format=vtk&wells=1&traces=1)
//	POST   /api/v1/networks               one-shot: inline scene in, statistics out
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/fracnet/pkg/pipeline"
	"github.com/matzehuels/fracnet/pkg/store"
)

// Server handles HTTP requests for the fracnet API.
type Server struct {
	router chi.Router
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
}

// Config configures the API server.
type Config struct {
	// Runner executes the pipeline. Required.
	Runner *pipeline.Runner

	// Store persists scenes. Defaults to an in-memory store.
	Store store.Store

	// Logger defaults to log.Default().
	Logger *log.Logger
}

// NewServer creates a server with the standard middleware stack.
func NewServer(cfg Config) *Server {
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	s := &Server{
		runner: cfg.Runner,
		store:  cfg.Store,
		logger: cfg.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/scenes", func(r chi.Router) {
			r.Post("/", s.handleSaveScene)
			r.Get("/", s.handleListScenes)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetScene)
				r.Delete("/", s.handleDeleteScene)
				r.Post("/compute", s.handleComputeScene)
				r.Get("/artifact", s.handleArtifact)
			})
		})
		r.Post("/networks", s.handleComputeInline)
	})
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the server on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("api listening", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
