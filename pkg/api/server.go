// Package api exposes the card market data over HTTP: card and set
// listings, detail lookups and the static type enumeration, each served
// through the cache-aside store so repeated queries never reach the
// vendor twice within a TTL window.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/poketerminal/tcg-market-gateway/pkg/cache"
	"github.com/poketerminal/tcg-market-gateway/pkg/metrics"
	"github.com/poketerminal/tcg-market-gateway/pkg/ppt"
)

// Server is the HTTP surface. Handlers are stateless; the cache store and
// vendor client are the only shared resources and both are safe for
// concurrent use.
type Server struct {
	router *chi.Mux
	store  *cache.Store
	client *ppt.Client
	logger zerolog.Logger
}

// New builds the router. The metrics endpoint serves the default
// Prometheus registry, which is where all package collectors register.
func New(store *cache.Store, client *ppt.Client, logger zerolog.Logger) *Server {
	s := &Server{
		store:  store,
		client: client,
		logger: logger.With().Str("component", "api").Logger(),
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/cards", s.handleCards)
		r.Get("/cards/{id}", s.handleCardByID)
		r.Get("/sets", s.handleSets)
		r.Get("/sets/{id}", s.handleSetByID)
		r.Get("/types", s.handleTypes)
	})

	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		s.logger.Warn().Err(err).Msg("write health response")
	}
}

// requestLogger logs one line per request with status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status_code", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn().Err(err).Msg("encode response")
	}
}

// writeError sends the fixed-shape failure body. The message is a stable
// user-facing string; the underlying error goes to the log only.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, message string, err error) {
	s.logger.Error().Err(err).Str("path", r.URL.Path).Msg(message)
	s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": message})
}
