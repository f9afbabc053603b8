package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/evenshare/evenshare/internal/middleware"
	"github.com/evenshare/evenshare/internal/models"
	"github.com/evenshare/evenshare/internal/service"
	"github.com/evenshare/evenshare/internal/settlement"
)

type createEventRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
	// Pointer/nil checks distinguish "absent" from zero: a missing totalCost
	// or participants list is a 400, an explicit zero/empty one is valid.
	TotalCost    *float64             `json:"totalCost"`
	Participants []models.Participant `json:"participants"`
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if req.TotalCost == nil {
		respondError(w, r, fmt.Errorf("%w: totalCost is required", service.ErrInvalidInput))
		return
	}
	if req.Participants == nil {
		respondError(w, r, fmt.Errorf("%w: participants must be an array", service.ErrInvalidInput))
		return
	}

	event, err := s.events.Create(r.Context(), middleware.GetUserID(r.Context()), service.CreateEventParams{
		Name:         req.Name,
		Date:         req.Date,
		TotalCost:    *req.TotalCost,
		Participants: req.Participants,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, event)
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.List(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := s.events.Get(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "eventID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var patch models.EventPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, r, err)
		return
	}

	event, err := s.events.Update(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "eventID"), patch)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	err := s.events.Delete(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "eventID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSharedEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.SharedWithFriend(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "friendID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

func (s *Server) handleEventBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := s.events.Balances(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "eventID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, balances)
}

type summaryResponse struct {
	Summary settlement.Summary       `json:"summary"`
	Details []settlement.EventDetail `json:"details"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, details, err := s.events.Summary(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summaryResponse{Summary: summary, Details: details})
}
