package model

import (
	"time"

	"github.com/gocql/gocql"
)

type Comment struct {
	PostID      gocql.UUID `json:"post_id"`
	CreatedAt   time.Time  `json:"created_at"`
	CommentID   gocql.UUID `json:"comment_id"`
	CommenterID gocql.UUID `json:"commenter_id"`
	Content     string     `json:"content"`
}

func (Comment) TableName() string {
	return "comments_by_post"
}
