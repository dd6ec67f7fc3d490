package domain

// User is an identity record. ID is assigned by the store on insert.
// A user owns zero or more Todos through Todo.UserID.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"size:80;uniqueIndex;not null"`
	Email        string `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null"` // placeholder text, not a real hash
}

func (User) TableName() string { return "users" }
