package service

import (
	"context"

	"github.com/gocql/gocql"

	"osohub/internal/model"
	"osohub/internal/repository"
)

type FeedService interface {
	ListByUser(ctx context.Context, userID gocql.UUID, limit int) ([]*model.FeedItem, error)
	DeleteItem(ctx context.Context, userID, postID gocql.UUID) (*model.FeedItem, error)
}

type FeedServiceImpl struct {
	feedRepo repository.FeedRepo
}

func NewFeedService(feedRepo repository.FeedRepo) FeedService {
	return &FeedServiceImpl{feedRepo: feedRepo}
}

func (s *FeedServiceImpl) ListByUser(ctx context.Context, userID gocql.UUID, limit int) ([]*model.FeedItem, error) {
	return s.feedRepo.ListByUser(ctx, userID, limit)
}

// DeleteItem 先回查找回 post_created_at，再按完整主键删除
func (s *FeedServiceImpl) DeleteItem(ctx context.Context, userID, postID gocql.UUID) (*model.FeedItem, error) {
	item, err := s.feedRepo.GetItem(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrFeedItemNotFound
	}
	if err := s.feedRepo.DeleteItem(ctx, userID, item.PostCreatedAt, postID); err != nil {
		return nil, err
	}
	return item, nil
}
