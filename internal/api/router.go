package api

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/meur/homepage/internal/league"
	"github.com/meur/homepage/internal/models"
	"github.com/meur/homepage/internal/music"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the HTTP server dependencies
type Server struct {
	router    chi.Router
	league    *league.Service
	music     *music.Service
	store     Pinger
	profile   models.Profile
	origins   []string
	staticDir string
	now       func() time.Time
	pick      func(n int) int
}

// Option configures a Server
type Option func(*Server)

// WithStore enables the database check in /health
func WithStore(store Pinger) Option {
	return func(s *Server) { s.store = store }
}

// WithProfile sets the about page content
func WithProfile(p models.Profile) Option {
	return func(s *Server) { s.profile = p }
}

// WithAllowedOrigins sets the CORS origins
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) { s.origins = origins }
}

// WithStaticDir serves the frontend bundle from dir
func WithStaticDir(dir string) Option {
	return func(s *Server) { s.staticDir = dir }
}

// WithClock replaces the request time source
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithAvatarPicker replaces the random avatar choice
func WithAvatarPicker(pick func(n int) int) Option {
	return func(s *Server) { s.pick = pick }
}

// New creates a new API server
func New(ctx context.Context, leagueSvc *league.Service, musicSvc *music.Service, opts ...Option) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		league:  leagueSvc,
		music:   musicSvc,
		profile: models.DefaultProfile(),
		origins: []string{"http://localhost:*"},
		now:     time.Now,
		pick:    rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.setupMiddleware(ctx)
	s.setupRoutes(ctx)

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware(ctx context.Context) {
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(ctx))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes(ctx context.Context) {
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/profile", s.handleGetProfile)

		r.Route("/football", func(r chi.Router) {
			r.Get("/league", s.handleGetLeague)
			r.Get("/all_time", s.handleGetAllTime)
			r.Get("/seasons/{year}", s.handleGetSeason)
			r.Get("/matchups", s.handleGetMatchups)
			r.Get("/head_to_head", s.handleGetHeadToHead)
			r.Get("/managers/{id}", s.handleGetManager)
		})

		r.Route("/music", func(r chi.Router) {
			r.Get("/feed", s.handleGetFeed)
			r.Get("/years", s.handleGetAlbumYears)
			r.Get("/years/{year}", s.handleGetYearList)
			r.Get("/story/{year}", s.handleGetStory)
			r.Get("/random", s.handleGetRandom)
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, http.StatusNotFound, "not found")
		})
	})

	s.router.Get("/health", s.handleHealth)

	if s.staticDir == "" {
		return
	}
	if info, err := os.Stat(s.staticDir); err != nil || !info.IsDir() {
		ctxlog.From(ctx).Warn("static directory not found, serving API only", "dir", s.staticDir)
		return
	}
	FileServer(s.router, "/", http.Dir(s.staticDir))
}

// requestLogger gives every request an id and a logger carrying it, and logs
// the outcome
func requestLogger(ctx context.Context) func(next http.Handler) http.Handler {
	base := ctxlog.From(ctx)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set("X-Request-Id", id)

			logger := base.With("request_id", id)
			r = r.WithContext(ctxlog.With(r.Context(), logger))

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			ctxlog.From(r.Context()).Error("health check failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondErr maps tagged errors to a status. Anything untagged is logged and
// hidden behind a 500.
func respondErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case goerr.HasTag(err, models.ErrTagInvalidArgument):
		respondError(w, http.StatusBadRequest, err.Error())
	case goerr.HasTag(err, models.ErrTagNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		ctxlog.From(r.Context()).Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
