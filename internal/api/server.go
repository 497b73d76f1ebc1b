// Package api serves numeral conversions over HTTP.
//
// The surface is read-only and stateless: every endpoint takes an integer in
// the path and returns its textual form as JSON, or a JSON error. Routing,
// logging, rate limiting and metrics are wired here; the conversion logic
// lives in the roman and ternary packages.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	xlog "github.com/numerals-go/numerals/internal/log"
)

// Config holds the server's tunables.
type Config struct {
	// RateLimit is the per-IP request budget per RateWindow. Zero disables
	// rate limiting.
	RateLimit  int
	RateWindow time.Duration
}

// Server is the HTTP API for numeral conversions.
type Server struct {
	cfg Config
	log zerolog.Logger
}

// New constructs a Server with the given config.
func New(cfg Config) *Server {
	if cfg.RateWindow <= 0 {
		cfg.RateWindow = time.Minute
	}
	return &Server{
		cfg: cfg,
		log: xlog.WithComponent("api"),
	}
}

// Handler builds the chi router with the full middleware stack applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	if s.cfg.RateLimit > 0 {
		r.Use(rateLimit(s.cfg.RateLimit, s.cfg.RateWindow))
	}

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/roman/{number}", s.handleRoman)
		r.Get("/ternary/{number}", s.handleTernary)
	})

	return r
}
