package model

import (
	"time"

	"github.com/gocql/gocql"
)

type User struct {
	UserID       gocql.UUID `json:"user_id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password_hash"`
	FullName     *string    `json:"full_name"`
	Bio          *string    `json:"bio"`
	AvatarURL    *string    `json:"avatar_url"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (User) TableName() string {
	return "users_by_id"
}
