package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Tomlord1122/todo-dbsetup/internal/config"
	"github.com/Tomlord1122/todo-dbsetup/internal/database"
	"github.com/Tomlord1122/todo-dbsetup/internal/repository"
	"github.com/Tomlord1122/todo-dbsetup/internal/server"
	"github.com/Tomlord1122/todo-dbsetup/internal/service"
)

func gracefulShutdown(apiServer *http.Server, dbService database.Service, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The server has 5 seconds to finish the request it is currently handling
	ctxTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxTimeout); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Closing database connection pool...")
	if err := dbService.Close(); err != nil {
		log.Printf("Error closing database connection pool: %v", err)
	} else {
		log.Println("Database connection pool closed.")
	}

	log.Println("Server exiting")

	done <- true
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 1. Open the store and create the tables if they are missing
	dbService, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Init(dbService); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	log.Printf("Database ready at %s", dbService.Location())

	// 2. Repositories and service share the explicit store handle
	gormDB := dbService.GetDB()
	userRepo := repository.NewGormUserRepository(gormDB)
	todoRepo := repository.NewGormTodoRepository(gormDB)
	seedService := service.NewSeedService(gormDB, userRepo, todoRepo)

	// 3. HTTP server
	apiServer := server.NewServer(cfg, seedService, dbService)

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, dbService, done)

	printBanner(apiServer.Addr, cfg.Debug)
	err = apiServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("HTTP server ListenAndServe error: %v", err)
	}

	<-done
	log.Println("Graceful shutdown complete.")
}

func printBanner(addr string, debug bool) {
	rule := strings.Repeat("=", 50)
	fmt.Printf("\n%s\n", rule)
	fmt.Println("  Todo App: Database Setup")
	fmt.Printf("  Open: http://%s\n", addr)
	fmt.Printf("  Test DB: http://%s/test-db\n", addr)
	if debug {
		fmt.Println("  Debug mode: on")
	}
	fmt.Printf("%s\n\n", rule)
}
