package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", s.homeHandler)
	r.Get("/test-db", s.testDBHandler)
	r.Get("/health", s.healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/users", s.listUsersHandler)
		r.Get("/todos", s.listTodosHandler)
	})

	return r
}

func (s *Server) homeHandler(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", nil)
}

// testDBHandler seeds an empty store and renders both tables.
func (s *Server) testDBHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := s.seedService.SeedAndList(r.Context())
	if err != nil {
		s.respondWithServerError(w, "Failed to load test data", err)
		return
	}
	s.render(w, "test_db.html", snap)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	healthStats := s.db.Health()
	if status, ok := healthStats["status"]; ok && status == "down" {
		respondWithJSON(w, http.StatusServiceUnavailable, healthStats)
		return
	}
	respondWithJSON(w, http.StatusOK, healthStats)
}

func (s *Server) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := s.seedService.ListUsers(r.Context())
	if err != nil {
		s.respondWithServerError(w, "Failed to retrieve users", err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

func (s *Server) listTodosHandler(w http.ResponseWriter, r *http.Request) {
	todos, err := s.seedService.ListTodos(r.Context())
	if err != nil {
		s.respondWithServerError(w, "Failed to retrieve todos", err)
		return
	}
	respondWithJSON(w, http.StatusOK, todos)
}
