package repository

import (
	"context"
	"errors"

	"github.com/gocql/gocql"

	"osohub/internal/model"
)

type LikeRepo interface {
	GetCount(ctx context.Context, postID gocql.UUID) (*model.LikeCount, error)
	ListByPost(ctx context.Context, postID gocql.UUID, limit int) ([]*model.LikeByPost, error)
	GetLike(ctx context.Context, postID, userID gocql.UUID) (*model.LikeByPost, error)
	CreateLike(ctx context.Context, like *model.LikeByPost) error
	DeleteLike(ctx context.Context, postID, userID gocql.UUID) error
	AdjustCount(ctx context.Context, postID gocql.UUID, delta int64) error

	// 对账用：遍历计数器表、重数点赞行
	ListCounts(ctx context.Context) ([]*model.LikeCount, error)
	CountLikes(ctx context.Context, postID gocql.UUID) (int64, error)
}

type LikeRepoImpl struct {
	session *gocql.Session
}

func NewLikeRepo(session *gocql.Session) LikeRepo {
	return &LikeRepoImpl{session: session}
}

func (s *LikeRepoImpl) GetCount(ctx context.Context, postID gocql.UUID) (*model.LikeCount, error) {
	var c model.LikeCount
	err := s.session.Query(
		`SELECT post_id, likes FROM likes_count WHERE post_id = ?`, postID).
		WithContext(ctx).
		Scan(&c.PostID, &c.Likes)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *LikeRepoImpl) ListByPost(ctx context.Context, postID gocql.UUID, limit int) ([]*model.LikeByPost, error) {
	iter := s.session.Query(
		`SELECT post_id, user_id, liked_at FROM likes_by_post WHERE post_id = ? LIMIT ?`, postID, limit).
		WithContext(ctx).
		Iter()

	likes := make([]*model.LikeByPost, 0, limit)
	var l model.LikeByPost
	for iter.Scan(&l.PostID, &l.UserID, &l.LikedAt) {
		cp := l
		likes = append(likes, &cp)
		l = model.LikeByPost{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return likes, nil
}

func (s *LikeRepoImpl) GetLike(ctx context.Context, postID, userID gocql.UUID) (*model.LikeByPost, error) {
	var l model.LikeByPost
	err := s.session.Query(
		`SELECT post_id, user_id, liked_at FROM likes_by_post WHERE post_id = ? AND user_id = ?`,
		postID, userID).
		WithContext(ctx).
		Scan(&l.PostID, &l.UserID, &l.LikedAt)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (s *LikeRepoImpl) CreateLike(ctx context.Context, like *model.LikeByPost) error {
	return s.session.Query(
		`INSERT INTO likes_by_post (post_id, user_id, liked_at) VALUES (?, ?, ?)`,
		like.PostID, like.UserID, like.LikedAt).
		WithContext(ctx).
		Exec()
}

func (s *LikeRepoImpl) DeleteLike(ctx context.Context, postID, userID gocql.UUID) error {
	return s.session.Query(
		`DELETE FROM likes_by_post WHERE post_id = ? AND user_id = ?`, postID, userID).
		WithContext(ctx).
		Exec()
}

// AdjustCount 相对增减计数器，与点赞行的写入不在同一原子操作里
func (s *LikeRepoImpl) AdjustCount(ctx context.Context, postID gocql.UUID, delta int64) error {
	return s.session.Query(
		`UPDATE likes_count SET likes = likes + ? WHERE post_id = ?`, delta, postID).
		WithContext(ctx).
		Exec()
}

func (s *LikeRepoImpl) ListCounts(ctx context.Context) ([]*model.LikeCount, error) {
	iter := s.session.Query(`SELECT post_id, likes FROM likes_count`).
		WithContext(ctx).
		Iter()

	counts := make([]*model.LikeCount, 0)
	var c model.LikeCount
	for iter.Scan(&c.PostID, &c.Likes) {
		cp := c
		counts = append(counts, &cp)
		c = model.LikeCount{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *LikeRepoImpl) CountLikes(ctx context.Context, postID gocql.UUID) (int64, error) {
	var count int64
	err := s.session.Query(
		`SELECT COUNT(*) FROM likes_by_post WHERE post_id = ?`, postID).
		WithContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
