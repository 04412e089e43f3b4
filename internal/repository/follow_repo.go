package repository

import (
	"context"
	"errors"

	"github.com/gocql/gocql"

	"osohub/internal/model"
)

type FollowRepo interface {
	ListFollowers(ctx context.Context, userID gocql.UUID, limit int) ([]*model.Follower, error)
	ListFollowees(ctx context.Context, userID gocql.UUID, limit int) ([]*model.Followee, error)
	GetFollower(ctx context.Context, userID, followerID gocql.UUID) (*model.Follower, error)
	GetFollowee(ctx context.Context, userID, followeeID gocql.UUID) (*model.Followee, error)
	CreateFollower(ctx context.Context, follower *model.Follower) error
	CreateFollowee(ctx context.Context, followee *model.Followee) error
	DeleteFollower(ctx context.Context, userID, followerID gocql.UUID) error
	DeleteFollowee(ctx context.Context, userID, followeeID gocql.UUID) error
}

type FollowRepoImpl struct {
	session *gocql.Session
}

func NewFollowRepo(session *gocql.Session) FollowRepo {
	return &FollowRepoImpl{session: session}
}

// ListFollowers 获取关注 user_id 的用户列表
func (s *FollowRepoImpl) ListFollowers(ctx context.Context, userID gocql.UUID, limit int) ([]*model.Follower, error) {
	iter := s.session.Query(
		`SELECT user_id, follower_id, followed_at FROM followers_by_user WHERE user_id = ? LIMIT ?`,
		userID, limit).
		WithContext(ctx).
		Iter()

	followers := make([]*model.Follower, 0, limit)
	var f model.Follower
	for iter.Scan(&f.UserID, &f.FollowerID, &f.FollowedAt) {
		cp := f
		followers = append(followers, &cp)
		f = model.Follower{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return followers, nil
}

// ListFollowees 获取 user_id 关注的用户列表
func (s *FollowRepoImpl) ListFollowees(ctx context.Context, userID gocql.UUID, limit int) ([]*model.Followee, error) {
	iter := s.session.Query(
		`SELECT user_id, followee_id, followed_at FROM followees_by_user WHERE user_id = ? LIMIT ?`,
		userID, limit).
		WithContext(ctx).
		Iter()

	followees := make([]*model.Followee, 0, limit)
	var f model.Followee
	for iter.Scan(&f.UserID, &f.FolloweeID, &f.FollowedAt) {
		cp := f
		followees = append(followees, &cp)
		f = model.Followee{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return followees, nil
}

func (s *FollowRepoImpl) GetFollower(ctx context.Context, userID, followerID gocql.UUID) (*model.Follower, error) {
	var f model.Follower
	err := s.session.Query(
		`SELECT user_id, follower_id, followed_at FROM followers_by_user WHERE user_id = ? AND follower_id = ?`,
		userID, followerID).
		WithContext(ctx).
		Scan(&f.UserID, &f.FollowerID, &f.FollowedAt)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (s *FollowRepoImpl) GetFollowee(ctx context.Context, userID, followeeID gocql.UUID) (*model.Followee, error) {
	var f model.Followee
	err := s.session.Query(
		`SELECT user_id, followee_id, followed_at FROM followees_by_user WHERE user_id = ? AND followee_id = ?`,
		userID, followeeID).
		WithContext(ctx).
		Scan(&f.UserID, &f.FolloweeID, &f.FollowedAt)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (s *FollowRepoImpl) CreateFollower(ctx context.Context, follower *model.Follower) error {
	return s.session.Query(
		`INSERT INTO followers_by_user (user_id, follower_id, followed_at) VALUES (?, ?, ?)`,
		follower.UserID, follower.FollowerID, follower.FollowedAt).
		WithContext(ctx).
		Exec()
}

func (s *FollowRepoImpl) CreateFollowee(ctx context.Context, followee *model.Followee) error {
	return s.session.Query(
		`INSERT INTO followees_by_user (user_id, followee_id, followed_at) VALUES (?, ?, ?)`,
		followee.UserID, followee.FolloweeID, followee.FollowedAt).
		WithContext(ctx).
		Exec()
}

func (s *FollowRepoImpl) DeleteFollower(ctx context.Context, userID, followerID gocql.UUID) error {
	return s.session.Query(
		`DELETE FROM followers_by_user WHERE user_id = ? AND follower_id = ?`, userID, followerID).
		WithContext(ctx).
		Exec()
}

func (s *FollowRepoImpl) DeleteFollowee(ctx context.Context, userID, followeeID gocql.UUID) error {
	return s.session.Query(
		`DELETE FROM followees_by_user WHERE user_id = ? AND followee_id = ?`, userID, followeeID).
		WithContext(ctx).
		Exec()
}
