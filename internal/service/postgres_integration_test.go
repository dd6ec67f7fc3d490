//go:build integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Tomlord1122/todo-dbsetup/internal/config"
	"github.com/Tomlord1122/todo-dbsetup/internal/database"
	"github.com/Tomlord1122/todo-dbsetup/internal/repository"
)

func setupPostgres(t *testing.T) database.Service {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("todo_test"),
		postgres.WithUsername("todo"),
		postgres.WithPassword("todo"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Skipf("Skipping PostgreSQL tests: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate PostgreSQL container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	dbService, err := database.New(config.Database{
		URL:             dsn,
		MaxIdleConns:    2,
		MaxOpenConns:    5,
		ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbService.Close() })
	require.NoError(t, database.Init(dbService))
	return dbService
}

func TestPostgres_SeedAndList(t *testing.T) {
	ctx := context.Background()
	dbService := setupPostgres(t)
	db := dbService.GetDB()
	svc := NewSeedService(db, repository.NewGormUserRepository(db), repository.NewGormTodoRepository(db))

	first, err := svc.SeedAndList(ctx)
	require.NoError(t, err)
	assert.True(t, first.Seeded)
	assertSeedSnapshot(t, first)

	second, err := svc.SeedAndList(ctx)
	require.NoError(t, err)
	assert.False(t, second.Seeded)
	assert.Equal(t, first.Users, second.Users)
	assert.Equal(t, first.Todos, second.Todos)

	assert.Equal(t, "postgres", dbService.Health()["dialect"])
}
