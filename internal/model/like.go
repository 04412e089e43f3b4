package model

import (
	"time"

	"github.com/gocql/gocql"
)

type LikeByPost struct {
	PostID  gocql.UUID `json:"post_id"`
	UserID  gocql.UUID `json:"user_id"`
	LikedAt time.Time  `json:"liked_at"`
}

func (LikeByPost) TableName() string {
	return "likes_by_post"
}

// LikeCount 计数器行，通过相对增减维护，可能与 likes_by_post 短暂漂移
type LikeCount struct {
	PostID gocql.UUID `json:"post_id"`
	Likes  int64      `json:"likes"`
}

func (LikeCount) TableName() string {
	return "likes_count"
}
