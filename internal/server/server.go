// Package server exposes the trace engine as a JSON HTTP API for the
// browser front-end.
//
// # Routes
//
//	GET  /healthz
//	GET  /api/algorithms        catalog in canonical order
//	GET  /api/algorithms/{id}   one descriptor
//	GET  /api/generators        generator kinds
//	POST /api/generate          {kind, size, seed, params}
//	POST /api/trace             {algorithm, input, seed}
//	POST /api/compare           {algorithms, input, seed}
//
// An unknown algorithm answers 404 unless the request carries
// ?fallback=true, in which case the default algorithm runs instead and the
// response is marked fellBack.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/san-kum/sortviz/internal/config"
)

type Server struct {
	cfg    config.ServerConfig
	logger *log.Logger
	router chi.Router
}

func New(cfg config.ServerConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = config.MaxSize
	}
	if cfg.MaxValue <= 0 {
		cfg.MaxValue = config.MaxValue
	}
	s := &Server{cfg: cfg, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(s.cors)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/algorithms", s.listAlgorithms)
		r.Get("/algorithms/{id}", s.getAlgorithm)
		r.Get("/generators", s.listGenerators)
		r.Post("/generate", s.generate)
		r.Post("/trace", s.trace)
		r.Post("/compare", s.compare)
	})
	return r
}

func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is cancelled, then drains connections.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
