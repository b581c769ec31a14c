// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"encoding/json"
	"errors"
	"net/http"

	"weighttrack/internal/app"
	"weighttrack/internal/domain"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	// Wrong-typed fields surface as an UnmarshalTypeError, which is a 422
	// rather than a 400.
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			writeMessage(w, http.StatusUnprocessableEntity, "username and password must be strings")
			return
		}
		writeMessage(w, http.StatusBadRequest, "No input data provided")
		return
	}

	user, err := s.auth.Register(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, app.ErrMissingFields):
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrUsernameTaken):
		writeMessage(w, http.StatusUnprocessableEntity, "Username already registered")
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "internal error")
	default:
		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "Registered new user",
			"user":    user,
		})
	}
}

// handleLogin reads credentials from the HTTP Basic-Auth header and
// responds with a signed bearer token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok {
		writeMessage(w, http.StatusBadRequest, "No input data provided")
		return
	}

	token, err := s.auth.Login(r.Context(), username, password)
	if errors.Is(err, app.ErrInvalidCredentials) {
		writeMessage(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
	})
}
