package model

import (
	"time"

	"github.com/gocql/gocql"
)

// FeedItem 由外部扇出管道写入，本服务只读和删除
type FeedItem struct {
	UserID        gocql.UUID `json:"user_id"`
	PostCreatedAt time.Time  `json:"post_created_at"`
	PostID        gocql.UUID `json:"post_id"`
	AuthorID      gocql.UUID `json:"author_id"`
	Title         string     `json:"title"`
}

func (FeedItem) TableName() string {
	return "feed_by_user"
}
