package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Tomlord1122/todo-dbsetup/internal/domain"
)

// TodoRepository defines the todo data operations
type TodoRepository interface {
	InsertAll(ctx context.Context, todos []*domain.Todo) error
	QueryAll(ctx context.Context) ([]domain.Todo, error)
	QueryEmpty(ctx context.Context) (bool, error)
	WithTx(tx *gorm.DB) TodoRepository
}

type gormTodoRepository struct {
	gormRepository[domain.Todo]
}

// NewGormTodoRepository creates a new GORM todo repository
func NewGormTodoRepository(db *gorm.DB) TodoRepository {
	return &gormTodoRepository{gormRepository[domain.Todo]{db: db}}
}

func (r *gormTodoRepository) WithTx(tx *gorm.DB) TodoRepository {
	return NewGormTodoRepository(tx)
}
