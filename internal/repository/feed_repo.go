package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gocql/gocql"

	"osohub/internal/model"
)

// FeedRepo feed_by_user 由外部扇出管道写入，这里只读和删除
type FeedRepo interface {
	ListByUser(ctx context.Context, userID gocql.UUID, limit int) ([]*model.FeedItem, error)
	GetItem(ctx context.Context, userID, postID gocql.UUID) (*model.FeedItem, error)
	DeleteItem(ctx context.Context, userID gocql.UUID, postCreatedAt time.Time, postID gocql.UUID) error
}

type FeedRepoImpl struct {
	session *gocql.Session
}

func NewFeedRepo(session *gocql.Session) FeedRepo {
	return &FeedRepoImpl{session: session}
}

func (s *FeedRepoImpl) ListByUser(ctx context.Context, userID gocql.UUID, limit int) ([]*model.FeedItem, error) {
	iter := s.session.Query(
		`SELECT user_id, post_created_at, post_id, author_id, title
		 FROM feed_by_user WHERE user_id = ? LIMIT ?`, userID, limit).
		WithContext(ctx).
		Iter()

	items := make([]*model.FeedItem, 0, limit)
	var it model.FeedItem
	for iter.Scan(&it.UserID, &it.PostCreatedAt, &it.PostID, &it.AuthorID, &it.Title) {
		cp := it
		items = append(items, &cp)
		it = model.FeedItem{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem 在分区内按 post_id 过滤，用于找回聚簇键 post_created_at
func (s *FeedRepoImpl) GetItem(ctx context.Context, userID, postID gocql.UUID) (*model.FeedItem, error) {
	var it model.FeedItem
	err := s.session.Query(
		`SELECT user_id, post_created_at, post_id, author_id, title
		 FROM feed_by_user WHERE user_id = ? AND post_id = ? ALLOW FILTERING`, userID, postID).
		WithContext(ctx).
		Scan(&it.UserID, &it.PostCreatedAt, &it.PostID, &it.AuthorID, &it.Title)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func (s *FeedRepoImpl) DeleteItem(ctx context.Context, userID gocql.UUID, postCreatedAt time.Time, postID gocql.UUID) error {
	return s.session.Query(
		`DELETE FROM feed_by_user WHERE user_id = ? AND post_created_at = ? AND post_id = ?`,
		userID, postCreatedAt, postID).
		WithContext(ctx).
		Exec()
}
