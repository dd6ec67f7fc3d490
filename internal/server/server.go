package server

import (
	"net/http"
	"time"

	"github.com/Tomlord1122/todo-dbsetup/internal/config"
	"github.com/Tomlord1122/todo-dbsetup/internal/database"
	"github.com/Tomlord1122/todo-dbsetup/internal/service"
)

type Server struct {
	seedService    service.SeedService
	db             database.Service
	debug          bool
	allowedOrigins []string
}

// New builds the route handler without a listener; used by NewServer and
// by tests.
func New(cfg config.Config, seedService service.SeedService, dbService database.Service) *Server {
	return &Server{
		seedService:    seedService,
		db:             dbService,
		debug:          cfg.Debug,
		allowedOrigins: cfg.HTTP.AllowedOrigins,
	}
}

func NewServer(cfg config.Config, seedService service.SeedService, dbService database.Service) *http.Server {
	appServer := New(cfg, seedService, dbService)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      appServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
