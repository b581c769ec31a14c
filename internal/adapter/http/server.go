package adapthttp

import (
	"net/http"

	"weighttrack/internal/app"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth   *app.AuthService
	weight *app.WeightService
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, weight *app.WeightService) *Server {
	return &Server{auth: auth, weight: weight}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Post("/register", s.handleRegister)
		v1.Post("/login", s.handleLogin)

		v1.Group(func(protected chi.Router) {
			protected.Use(s.requireToken)
			protected.Get("/track", s.handleListWeights)
			protected.Get("/track/{date}", s.handleGetWeight)
			protected.Post("/track/{date}", s.handleUpsertWeight)
			protected.Put("/track/{date}", s.handleUpsertWeight)
			protected.Delete("/track/{date}", s.handleDeleteWeight)
		})
	})

	return r
}
