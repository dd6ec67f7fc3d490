package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Tomlord1122/todo-dbsetup/internal/domain"
)

// UserRepository defines the user data operations
type UserRepository interface {
	InsertAll(ctx context.Context, users []*domain.User) error
	QueryAll(ctx context.Context) ([]domain.User, error)
	QueryEmpty(ctx context.Context) (bool, error)
	// WithTx returns a repository bound to tx.
	WithTx(tx *gorm.DB) UserRepository
}

type gormUserRepository struct {
	gormRepository[domain.User]
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{gormRepository[domain.User]{db: db}}
}

func (r *gormUserRepository) WithTx(tx *gorm.DB) UserRepository {
	return NewGormUserRepository(tx)
}
