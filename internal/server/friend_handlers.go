package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/evenshare/evenshare/internal/middleware"
)

func (s *Server) handleListFriends(w http.ResponseWriter, r *http.Request) {
	friends, err := s.friends.List(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, friends)
}

type addFriendRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleAddFriend(w http.ResponseWriter, r *http.Request) {
	var req addFriendRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	friend, err := s.friends.Add(r.Context(), middleware.GetUserID(r.Context()), req.Name)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, friend)
}

func (s *Server) handleDeleteFriend(w http.ResponseWriter, r *http.Request) {
	err := s.friends.Delete(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "friendID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
