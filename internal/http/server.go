// Package http exposes the REST API: user registration and
// authentication plus entry CRUD, search and balance.
package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"minhasfinancas/internal/config"
	"minhasfinancas/internal/log"
	"minhasfinancas/internal/services"
)

// Server wires the chi router, middleware and handlers around the
// application services.
type Server struct {
	httpServer *http.Server
	limiter    *rateLimiter
	logger     *log.Logger

	users   *services.UserService
	entries *services.EntryService
}

func NewServer(cfg *config.Config, users *services.UserService, entries *services.EntryService, logger *log.Logger) *Server {
	s := &Server{
		limiter: newRateLimiter(cfg.RateLimitPerMinute),
		logger:  logger.WithComponent(log.ComponentHTTP),
		users:   users,
		entries: entries,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(log.RequestLogger(logger))
	r.Use(securityHeaders)
	r.Use(s.limiter.middleware)

	r.Route("/api/usuarios", func(r chi.Router) {
		r.Post("/", s.handleUserSave)
		r.Post("/autenticar", s.handleUserAuthenticate)
		r.Get("/{id}/saldo", s.handleUserBalance)
	})

	r.Route("/api/lancamentos", func(r chi.Router) {
		r.Get("/", s.handleEntrySearch)
		r.Post("/", s.handleEntrySave)
		r.Get("/{id}", s.handleEntryGet)
		r.Put("/{id}", s.handleEntryUpdate)
		r.Delete("/{id}", s.handleEntryDelete)
		r.Put("/{id}/atualiza-status", s.handleEntryUpdateStatus)
	})

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// Handler returns the router, used directly by the tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.stop()
	return s.httpServer.Shutdown(ctx)
}
