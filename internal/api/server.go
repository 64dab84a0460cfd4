// Package api exposes predictions, simulations, odds and the fight card over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/fight-predictor/internal/config"
	"github.com/yourusername/fight-predictor/internal/metrics"
	"github.com/yourusername/fight-predictor/internal/odds"
	"github.com/yourusername/fight-predictor/internal/service"
)

// Dependencies are the services the handlers call into. Odds may be nil.
type Dependencies struct {
	Predictions *service.PredictionService
	FightCard   *service.FightCardService
	Odds        *odds.Service
}

// Options tune the HTTP surface.
type Options struct {
	Port           int
	CORSOrigins    []string
	RequestTimeout time.Duration
	// RoundDelay paces the websocket simulation stream between rounds.
	RoundDelay time.Duration
}

// OptionsFromConfig maps the server section onto Options.
func OptionsFromConfig(cfg config.ServerConfig) Options {
	return Options{
		Port:           cfg.Port,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	}
}

// Server is the predictor's HTTP API.
type Server struct {
	deps    Dependencies
	opts    Options
	logger  *logrus.Entry
	handler http.Handler
	server  *http.Server
}

// NewServer builds the router.
func NewServer(deps Dependencies, opts Options, log *logrus.Logger) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	s := &Server{
		deps:   deps,
		opts:   opts,
		logger: log.WithField("component", "api"),
	}
	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Handle("/metrics", metrics.Handler())
	r.Get("/ws/simulate", s.handleSimulationStream)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(s.opts.RequestTimeout))

		r.Get("/fighters", s.handleSearchFighters)
		r.Get("/fighters/{name}", s.handleGetFighter)

		r.Post("/predictions", s.handlePredict)
		r.Post("/simulations", s.handleSimulate)
		r.Get("/odds", s.handleOdds)

		r.Get("/card", s.handleListCard)
		r.Post("/card", s.handleAddCardEntry)
		r.Get("/card/lock", s.handleLock)
		r.Delete("/card/{id}", s.handleRemoveCardEntry)
	})

	return r
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.opts.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("port", s.opts.Port).Info("API server starting")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("API server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
