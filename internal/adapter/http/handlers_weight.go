package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"weighttrack/internal/app"
	"weighttrack/internal/domain"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListWeights(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	items, err := s.weight.List(r.Context(), user.ID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "All weights returned",
		"weights": items,
	})
}

func (s *Server) handleGetWeight(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	date := chi.URLParam(r, "date")

	entry, err := s.weight.Get(r.Context(), user.ID, date)
	if errors.Is(err, domain.ErrBadDate) {
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if entry == nil {
		writeMessage(w, http.StatusNotFound, fmt.Sprintf("No record for %s found", date))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Weight returned",
		"weight":  entry,
	})
}

func (s *Server) handleUpsertWeight(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	date := chi.URLParam(r, "date")

	// A pointer distinguishes an absent weight field from zero; a
	// non-numeric value surfaces as an UnmarshalTypeError, which is a 422
	// rather than a 400.
	var req struct {
		Weight *float64 `json:"weight"`
	}
	if err := parseJSON(r, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			writeMessage(w, http.StatusUnprocessableEntity, "weight must be a number")
			return
		}
		writeMessage(w, http.StatusBadRequest, "No input data provided")
		return
	}
	if req.Weight == nil {
		writeMessage(w, http.StatusUnprocessableEntity, "weight is required")
		return
	}

	entry, created, err := s.weight.Upsert(r.Context(), user.ID, date, *req.Weight)
	switch {
	case errors.Is(err, domain.ErrBadDate) || errors.Is(err, app.ErrInvalidWeight):
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "internal error")
	case created:
		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "Weight added",
			"weight":  entry,
		})
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Weight updated",
			"weight":  entry,
		})
	}
}

// handleDeleteWeight removes the record for the given date. Deleting a
// date with no record still succeeds.
func (s *Server) handleDeleteWeight(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	date := chi.URLParam(r, "date")

	deleted, err := s.weight.Delete(r.Context(), user.ID, date)
	if errors.Is(err, domain.ErrBadDate) {
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Record deleted",
		"deleted": deleted,
	})
}
