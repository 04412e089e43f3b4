package dto

import (
	"time"

	"github.com/gocql/gocql"
)

type CreateCommentDTO struct {
	PostID      gocql.UUID  `json:"post_id" binding:"required"`
	CommentID   *gocql.UUID `json:"comment_id"`
	CreatedAt   *time.Time  `json:"created_at"`
	CommenterID gocql.UUID  `json:"commenter_id" binding:"required"`
	Content     string      `json:"content" binding:"required"`
}

type UpdateCommentDTO struct {
	Content string `json:"content" binding:"required"`
}
