package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/evenshare/evenshare/internal/access"
	"github.com/evenshare/evenshare/internal/auth"
	"github.com/evenshare/evenshare/internal/service"
	"github.com/evenshare/evenshare/internal/settlement"
	"github.com/evenshare/evenshare/internal/storage"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError translates the service error taxonomy onto the wire contract:
// 400 malformed input, 401 bad credentials, 403 authenticated-but-denied,
// 404 absent resource or relationship, 409 duplicate on create, 500
// everything else. The response carries a reason string, never a fault trace.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, access.ErrDenied):
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "access denied"})
	case errors.Is(err, storage.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, auth.ErrUserExists), errors.Is(err, storage.ErrConflict):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, settlement.ErrInvalidEvent), errors.Is(err, settlement.ErrNotAParticipant):
		// Contract violations, not user input errors. Log them distinctly.
		slog.Error("settlement contract violation", "path", r.URL.Path, "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	default:
		slog.Error("unexpected fault", "path", r.URL.Path, "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// decodeJSON reads the request body into dst, reporting malformed JSON as
// invalid input.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return service.ErrInvalidInput
	}
	return nil
}
