package dto

import (
	"time"

	"github.com/gocql/gocql"
)

type CreatePostDTO struct {
	UserID      gocql.UUID  `json:"user_id" binding:"required"`
	PostID      *gocql.UUID `json:"post_id"`
	CreatedAt   *time.Time  `json:"created_at"`
	Title       string      `json:"title" binding:"required"`
	Description *string     `json:"description"`
	ImageURLs   []string    `json:"image_urls"`
}
