package model

import (
	"time"

	"github.com/gocql/gocql"
)

// PostByUser 帖子主表，按作者分区
type PostByUser struct {
	UserID      gocql.UUID `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	PostID      gocql.UUID `json:"post_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	ImageURLs   []string   `json:"image_urls"`
}

func (PostByUser) TableName() string {
	return "posts_by_user"
}

// PostByDateBucket 按日期桶冗余的帖子视图，由外部管道写入
type PostByDateBucket struct {
	DateBucket  string     `json:"date_bucket"`
	CreatedAt   time.Time  `json:"created_at"`
	PostID      gocql.UUID `json:"post_id"`
	UserID      gocql.UUID `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	ImageURLs   []string   `json:"image_urls"`
}

func (PostByDateBucket) TableName() string {
	return "posts_by_date_bucket"
}

// PostByKeyword 按关键词冗余的帖子视图，由外部管道写入
type PostByKeyword struct {
	Keyword   string     `json:"keyword"`
	CreatedAt time.Time  `json:"created_at"`
	PostID    gocql.UUID `json:"post_id"`
	UserID    gocql.UUID `json:"user_id"`
}

func (PostByKeyword) TableName() string {
	return "posts_by_keyword"
}
