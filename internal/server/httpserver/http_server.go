// Package httpserver wires handlers, middleware and routes into the docsite HTTP server.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"git.home.luguber.info/inful/docsite/internal/config"
	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/history"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/nav"
	handlers "git.home.luguber.info/inful/docsite/internal/server/handlers"
	smw "git.home.luguber.info/inful/docsite/internal/server/middleware"
	"github.com/go-chi/chi/v5"
)

// Deps are the collaborators the server routes to.
type Deps struct {
	Store    handlers.ContentSource
	Builder  *nav.Builder
	Searcher handlers.Searcher
	Renderer handlers.Renderer

	// Optional.
	History           history.Source
	Recorder          metrics.Recorder
	PrometheusHandler http.Handler
	Logger            *slog.Logger
}

// Server serves the JSON API.
type Server struct {
	cfg          *config.Config
	router       chi.Router
	httpServer   *http.Server
	logger       *slog.Logger
	errorAdapter *derrors.HTTPErrorAdapter
	addr         net.Addr
}

// New constructs a server and registers every route.
func New(cfg *config.Config, deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Recorder == nil {
		deps.Recorder = metrics.NoopRecorder{}
	}

	s := &Server{
		cfg:          cfg,
		router:       chi.NewRouter(),
		logger:       deps.Logger,
		errorAdapter: derrors.NewHTTPErrorAdapter(deps.Logger),
	}
	s.routes(deps)
	return s
}

func (s *Server) routes(deps Deps) {
	monitoring := handlers.NewMonitoringHandlers(time.Now())
	searchH := handlers.NewSearchHandlers(deps.Searcher)
	docs := handlers.NewDocsHandlers(deps.Store, deps.Builder, deps.Renderer, handlers.DocsOptions{
		History:    deps.History,
		EditPrefix: s.cfg.Content.EditPrefix,
		Recorder:   deps.Recorder,
		Logger:     deps.Logger,
	})

	s.router.Use(smw.Chain(deps.Logger, s.errorAdapter, deps.Recorder))

	s.router.Get(s.cfg.Monitoring.HealthPath, monitoring.HandleHealthCheck)
	if s.cfg.Monitoring.Metrics.Enabled && deps.PrometheusHandler != nil {
		s.router.Method(http.MethodGet, s.cfg.Monitoring.Metrics.Path, deps.PrometheusHandler)
	}

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/search", searchH.HandleSearch)
		r.Get("/docs/tree", docs.HandleTree)
		r.Get("/docs/{section}/{page}", docs.HandlePage)
	})

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.errorAdapter.WriteErrorResponse(w, r, derrors.NotFoundError("route not found").
			WithContext("path", r.URL.Path).
			Build())
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.errorAdapter.WriteErrorResponse(w, r, derrors.ValidationError("invalid HTTP method").
			WithContext("method", r.Method).
			WithContext("allowed_method", http.MethodGet).
			Build())
	})
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Addr returns the bound listen address once Start succeeded.
func (s *Server) Addr() net.Addr { return s.addr }

// Start binds the configured address and serves in the background. Binding
// happens synchronously so an address in use fails fast.
func (s *Server) Start(ctx context.Context) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Server.Addr)
	if err != nil {
		return derrors.RuntimeError("http startup failed").
			WithCause(err).
			WithContext("addr", s.cfg.Server.Addr).
			Build()
	}
	s.addr = ln.Addr()

	s.httpServer = &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server error", logfields.Error(err))
		}
	}()

	s.logger.Info("HTTP server started", logfields.Addr(s.addr.String()))
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}
