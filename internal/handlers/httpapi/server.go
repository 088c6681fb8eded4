// Package httpapi serves the tournament over HTTP: read models for polling,
// a websocket stream of lobby snapshots and the admin and captain actions.
package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/KirkDiggler/mixladder/internal/services/ladder"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

const (
	defaultPingInterval = 15 * time.Second
	defaultPingTimeout  = 30 * time.Second
)

// Config holds configuration for the HTTP API
type Config struct {
	Service ladder.Service

	// Optional logger, defaults to a no-op logger
	Logger *zap.Logger

	// AllowedOrigins for CORS and websocket origin checks, defaults to any
	AllowedOrigins []string

	// PingInterval is how often idle websocket streams are pinged
	PingInterval time.Duration

	// PingTimeout closes a stream whose client does not answer a ping in time
	PingTimeout time.Duration
}

// Server exposes the ladder service over HTTP
type Server struct {
	service        ladder.Service
	logger         *zap.Logger
	allowedOrigins []string
	pingInterval   time.Duration
	pingTimeout    time.Duration
}

// New creates a new HTTP API server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Service == nil {
		return nil, errors.New("ladder service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	pingInterval := cfg.PingInterval
	if pingInterval <= 0 {
		pingInterval = defaultPingInterval
	}

	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = defaultPingTimeout
	}

	return &Server{
		service:        cfg.Service,
		logger:         logger,
		allowedOrigins: origins,
		pingInterval:   pingInterval,
		pingTimeout:    pingTimeout,
	}, nil
}

// Routes builds the router
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.healthz)

	r.Route("/tournaments/{tournamentID}", func(r chi.Router) {
		r.Get("/standings", s.getStandings)
		r.Get("/rounds/{number}", s.getRound)
		r.Post("/players", s.registerPlayer)
		r.Post("/rounds", s.generateRound)
	})

	r.Route("/lobbies/{lobbyID}", func(r chi.Router) {
		r.Get("/", s.getLobby)
		r.Get("/ws", s.watchLobby)
		r.Post("/draft", s.startDraft)
		r.Post("/first-picker", s.setFirstPicker)
		r.Post("/picks", s.pick)
		r.Post("/finish", s.finishLobby)
	})

	return r
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
