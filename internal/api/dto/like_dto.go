package dto

import (
	"time"

	"github.com/gocql/gocql"
)

type CreateLikeDTO struct {
	PostID  gocql.UUID `json:"post_id" binding:"required"`
	UserID  gocql.UUID `json:"user_id" binding:"required"`
	LikedAt *time.Time `json:"liked_at"`
}
