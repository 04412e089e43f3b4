package model

import (
	"time"

	"github.com/gocql/gocql"
)

// Follower 关注 user_id 的人
type Follower struct {
	UserID     gocql.UUID `json:"user_id"`
	FollowerID gocql.UUID `json:"follower_id"`
	FollowedAt time.Time  `json:"followed_at"`
}

func (Follower) TableName() string {
	return "followers_by_user"
}

// Followee user_id 关注的人
type Followee struct {
	UserID     gocql.UUID `json:"user_id"`
	FolloweeID gocql.UUID `json:"followee_id"`
	FollowedAt time.Time  `json:"followed_at"`
}

func (Followee) TableName() string {
	return "followees_by_user"
}
