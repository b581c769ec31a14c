package adapthttp

import (
	"context"
	"errors"
	"net/http"

	"weighttrack/internal/app"
	"weighttrack/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// tokenHeader carries the bearer token on protected routes.
const tokenHeader = "x-access-token"

// requireToken resolves the x-access-token header to a user and stores it
// in the request context, short-circuiting with 401 otherwise. The
// distinct token error kinds all collapse to 401 at this boundary.
func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := s.auth.Authenticate(r.Context(), r.Header.Get(tokenHeader))
		switch {
		case errors.Is(err, app.ErrTokenMissing):
			writeMessage(w, http.StatusUnauthorized, "Token is missing, please authenticate")
		case errors.Is(err, app.ErrTokenInvalid) || errors.Is(err, app.ErrTokenExpired):
			writeMessage(w, http.StatusUnauthorized, "Token is invalid")
		case err != nil:
			writeMessage(w, http.StatusInternalServerError, "internal error")
		default:
			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	})
}

// currentUser returns the authenticated user placed in the context by
// requireToken.
func currentUser(r *http.Request) *domain.User {
	u, _ := r.Context().Value(userContextKey).(*domain.User)
	return u
}
