// Package server exposes the application over JSON HTTP. Handlers decode
// requests, call the service layer and translate its error taxonomy onto the
// status codes of the wire contract; they hold no business rules themselves.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/evenshare/evenshare/internal/auth"
	"github.com/evenshare/evenshare/internal/middleware"
	"github.com/evenshare/evenshare/internal/service"
	"github.com/evenshare/evenshare/internal/storage"
)

// Server wires the services onto routes.
type Server struct {
	auth    *service.AuthService
	friends *service.FriendService
	events  *service.EventService
	tokens  *auth.TokenManager
	store   storage.Store
}

// New creates a Server.
func New(authSvc *service.AuthService, friends *service.FriendService, events *service.EventService, tokens *auth.TokenManager, store storage.Store) *Server {
	return &Server{
		auth:    authSvc,
		friends: friends,
		events:  events,
		tokens:  tokens,
		store:   store,
	}
}

// Handler builds the route tree. Everything under /api except registration,
// login and health requires a bearer token.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Metrics)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Get("/health", s.handleHealth)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(s.tokens))

			r.Get("/users/profile", s.handleGetProfile)
			r.Put("/users/profile", s.handleUpdateProfile)

			r.Get("/friends", s.handleListFriends)
			r.Post("/friends/request", s.handleAddFriend)
			r.Delete("/friends/{friendID}", s.handleDeleteFriend)

			r.Get("/events", s.handleListEvents)
			r.Post("/events", s.handleCreateEvent)
			r.Get("/events/summary", s.handleSummary)
			r.Get("/events/shared/{friendID}", s.handleSharedEvents)
			r.Get("/events/{eventID}", s.handleGetEvent)
			r.Get("/events/{eventID}/balances", s.handleEventBalances)
			r.Put("/events/{eventID}", s.handleUpdateEvent)
			r.Delete("/events/{eventID}", s.handleDeleteEvent)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"dataStats": stats,
	})
}
