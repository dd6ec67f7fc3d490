package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Tomlord1122/todo-dbsetup/internal/domain"
	"github.com/Tomlord1122/todo-dbsetup/internal/repository"
)

// UserResponse is the display form of a user. The password hash is never
// exposed.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TodoResponse is the display form of a todo.
type TodoResponse struct {
	ID          uint   `json:"id"`
	TaskContent string `json:"task_content"`
	UserID      uint   `json:"user_id"`
}

// Snapshot is the full contents of both tables after a seed-and-list call.
type Snapshot struct {
	Users []UserResponse `json:"users"`
	Todos []TodoResponse `json:"todos"`
	// Seeded is true when this call inserted the sample rows.
	Seeded bool `json:"seeded"`
}

// SeedUser and SeedTodo describe the fixed sample rows.
type SeedUser struct {
	Username     string
	Email        string
	PasswordHash string
}

type SeedTodo struct {
	TaskContent string
	// Owner indexes into SeedUsers.
	Owner int
}

// SeedUsers returns the three sample users inserted into an empty store.
func SeedUsers() []SeedUser {
	users := make([]SeedUser, 0, 3)
	for i := 1; i <= 3; i++ {
		users = append(users, SeedUser{
			Username:     fmt.Sprintf("testuser%d", i),
			Email:        fmt.Sprintf("test%d@example.com", i),
			PasswordHash: "temporary",
		})
	}
	return users
}

// SeedTodos returns the sample todos, one per seed user.
func SeedTodos() []SeedTodo {
	return []SeedTodo{
		{TaskContent: "Learn Flask", Owner: 0},
		{TaskContent: "Learn SQLAlchemy", Owner: 1},
		{TaskContent: "Build Todo App", Owner: 2},
	}
}

// SeedService seeds an empty store and lists its contents.
type SeedService interface {
	// SeedAndList inserts the sample users and todos if the store has no
	// users, then returns every user and todo.
	SeedAndList(ctx context.Context) (*Snapshot, error)

	ListUsers(ctx context.Context) ([]UserResponse, error)
	ListTodos(ctx context.Context) ([]TodoResponse, error)
}

type seedService struct {
	db    *gorm.DB
	users repository.UserRepository
	todos repository.TodoRepository
}

// NewSeedService creates a SeedService. db is used to open the seeding
// transaction; the repositories are rebound to it for the writes.
func NewSeedService(db *gorm.DB, users repository.UserRepository, todos repository.TodoRepository) SeedService {
	return &seedService{
		db:    db,
		users: users,
		todos: todos,
	}
}

func (s *seedService) SeedAndList(ctx context.Context) (*Snapshot, error) {
	seeded, err := s.seedIfEmpty(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	todos, err := s.ListTodos(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{Users: users, Todos: todos, Seeded: seeded}, nil
}

// seedIfEmpty runs the emptiness check and both bulk inserts in one
// transaction, so the store holds either no seed rows or all of them.
func (s *seedService) seedIfEmpty(ctx context.Context) (bool, error) {
	seeded := false
	// Transaction commits when the callback returns nil and rolls back on
	// any error, so a failed todo insert also undoes the user insert.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Every statement below must go through tx. With SQLite the pool has
		// a single connection, and using s.db here would block forever.
		users := s.users.WithTx(tx)
		todos := s.todos.WithTx(tx)

		empty, err := users.QueryEmpty(ctx)
		if err != nil {
			return fmt.Errorf("check users: %w", err)
		}
		if !empty {
			return nil // already seeded, nothing to write
		}

		seedUsers := SeedUsers()
		newUsers := make([]*domain.User, 0, len(seedUsers))
		for _, su := range seedUsers {
			newUsers = append(newUsers, &domain.User{
				Username:     su.Username,
				Email:        su.Email,
				PasswordHash: su.PasswordHash,
			})
		}
		if err := users.InsertAll(ctx, newUsers); err != nil {
			return fmt.Errorf("insert seed users: %w", err)
		}

		// GORM writes the store-assigned IDs back into newUsers.
		seedTodos := SeedTodos()
		newTodos := make([]*domain.Todo, 0, len(seedTodos))
		for _, st := range seedTodos {
			todo, err := domain.NewTodo(newUsers[st.Owner], st.TaskContent)
			if err != nil {
				return fmt.Errorf("build seed todo %q: %w", st.TaskContent, err)
			}
			newTodos = append(newTodos, todo)
		}
		if err := todos.InsertAll(ctx, newTodos); err != nil {
			return fmt.Errorf("insert seed todos: %w", err)
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}

func (s *seedService) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.users.QueryAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}

	responses := make([]UserResponse, 0, len(users)) // Pre-allocate slice capacity
	for _, u := range users {
		responses = append(responses, UserResponse{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
		})
	}
	return responses, nil
}

func (s *seedService) ListTodos(ctx context.Context) ([]TodoResponse, error) {
	todos, err := s.todos.QueryAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}

	responses := make([]TodoResponse, 0, len(todos))
	for _, t := range todos {
		responses = append(responses, TodoResponse{
			ID:          t.ID,
			TaskContent: t.TaskContent,
			UserID:      t.UserID,
		})
	}
	return responses, nil
}
