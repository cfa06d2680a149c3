package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"chartscout/app"
	"chartscout/internal"
	"chartscout/internal/config"
)

// Server wires the HTTP surface for dataset analysis.
type Server struct {
	router  *chi.Mux
	service *app.AnalysisService
	cfg     *config.Config
	log     *internal.Logger
}

// NewServer builds the router with the standard middleware stack.
func NewServer(cfg *config.Config, service *app.AnalysisService) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		service: service,
		cfg:     cfg,
		log:     internal.DefaultLogger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(cfg.Server.ReadTimeout))

	s.router.Get("/health", s.handleHealth)
	s.router.Post("/api/analyze", s.handleAnalyze)
	s.router.Get("/api/statistics", s.handleStatistics)

	return s
}

// Router exposes the handler tree, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:        ":" + s.cfg.Server.Port,
		Handler:     s.router,
		ReadTimeout: s.cfg.Server.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening on :%s", s.cfg.Server.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
