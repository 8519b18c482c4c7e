package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/holidays/pkg/yearcache"
)

const defaultPayloadTTL = 12 * time.Hour

// Server exposes the holiday calendar over HTTP. Rendered year payloads are
// cached per (provider, year, locale) key.
type Server struct {
	loader *yearcache.Loader
	log    *slog.Logger
	ttl    time.Duration
}

// Option configures the server.
type Option func(*Server)

// WithPayloadTTL sets how long rendered year payloads stay cached.
// Default: 12 hours.
func WithPayloadTTL(d time.Duration) Option {
	return func(s *Server) {
		s.ttl = d
	}
}

// New creates a server that caches payloads in the given store.
func New(store yearcache.Store, log *slog.Logger, opts ...Option) *Server {
	s := &Server{
		loader: yearcache.NewLoader(store),
		log:    log,
		ttl:    defaultPayloadTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the HTTP handler with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(s.recoverPanics)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/providers", s.handleProviders)
		r.Get("/holidays/{code}/{year}", s.handleYear)
		r.Get("/holidays/{code}/{year}/{key}", s.handleHoliday)
		r.Get("/workday/{code}/{date}", s.handleWorkday)
	})

	return r
}
