package domain

import (
	"errors"
	"fmt"
)

// ErrUserNotPersisted is returned when a Todo is built for a user that has
// not been assigned an ID by the store yet.
var ErrUserNotPersisted = errors.New("user has no store-assigned id")

type Todo struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	TaskContent string `gorm:"size:200;not null"`
	UserID      uint   `gorm:"not null;index"`
	User        *User  `json:"-"` // belongs-to; creates the users.id foreign key
}

func (Todo) TableName() string { return "todos" }

// NewTodo builds a Todo owned by u. u must already be persisted.
func NewTodo(u *User, content string) (*Todo, error) {
	if u == nil || u.ID == 0 {
		return nil, ErrUserNotPersisted
	}
	if content == "" {
		return nil, fmt.Errorf("todo content cannot be empty")
	}
	return &Todo{TaskContent: content, UserID: u.ID}, nil
}
