// Package server exposes the scheduling engine over a small JSON HTTP API.
//
// Routes:
//
//	GET  /healthz           liveness
//	GET  /api/v1/policies   canonical policy names
//	POST /api/v1/simulate   schedule a queue with one or more policies
//
// Every response uses the same envelope (see Response) and carries an
// X-Request-ID header.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/disk-sim/disk-sim/sim"
)

// DefaultMaxBodyBytes bounds the size of a simulate request body.
const DefaultMaxBodyBytes = 1 << 20

// Server is the disk-sim HTTP API.
type Server struct {
	router       chi.Router
	logger       logrus.FieldLogger
	startTime    time.Time
	maxBodyBytes int64
	defaults     sim.SchedulerOptions
}

// Option configures optional Server settings.
type Option func(*Server)

// WithLogger replaces the package-level logrus logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMaxBodyBytes caps the request body size for POST endpoints.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		s.maxBodyBytes = n
	}
}

// WithSchedulerOptions sets the options used when a request leaves them unset.
func WithSchedulerOptions(opts sim.SchedulerOptions) Option {
	return func(s *Server) {
		s.defaults = opts
	}
}

// New creates a Server with all routes registered.
func New(opts ...Option) *Server {
	s := &Server{
		router:       chi.NewRouter(),
		logger:       logrus.StandardLogger(),
		startTime:    time.Now(),
		maxBodyBytes: DefaultMaxBodyBytes,
		defaults:     sim.DefaultSchedulerOptions(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithField("component", "server")
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(withRequestID)
	r.Use(accessLog(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/policies", s.handleListPolicies)
		r.Post("/simulate", s.handleSimulate)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, RequestIDFromContext(r.Context()), http.StatusNotFound, &APIError{
			Code:    CodeNotFound,
			Message: "no route for " + r.Method + " " + r.URL.Path,
		})
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
