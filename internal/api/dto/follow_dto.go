package dto

import (
	"time"

	"github.com/gocql/gocql"
)

type CreateFollowerDTO struct {
	UserID     gocql.UUID `json:"user_id" binding:"required"`
	FollowerID gocql.UUID `json:"follower_id" binding:"required"`
	FollowedAt *time.Time `json:"followed_at"`
}

type CreateFolloweeDTO struct {
	UserID     gocql.UUID `json:"user_id" binding:"required"`
	FolloweeID gocql.UUID `json:"followee_id" binding:"required"`
	FollowedAt *time.Time `json:"followed_at"`
}
