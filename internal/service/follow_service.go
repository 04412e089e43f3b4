package service

import (
	"context"
	"time"

	"github.com/gocql/gocql"

	"osohub/internal/api/dto"
	"osohub/internal/model"
	"osohub/internal/repository"
)

type FollowService interface {
	ListFollowers(ctx context.Context, userID gocql.UUID, limit int) ([]*model.Follower, error)
	ListFollowees(ctx context.Context, userID gocql.UUID, limit int) ([]*model.Followee, error)
	CreateFollower(ctx context.Context, followDTO *dto.CreateFollowerDTO) (*model.Follower, error)
	CreateFollowee(ctx context.Context, followDTO *dto.CreateFolloweeDTO) (*model.Followee, error)
	DeleteFollower(ctx context.Context, userID, followerID gocql.UUID) (*model.Follower, error)
	DeleteFollowee(ctx context.Context, userID, followeeID gocql.UUID) (*model.Followee, error)
}

type FollowServiceImpl struct {
	followRepo repository.FollowRepo
}

func NewFollowService(followRepo repository.FollowRepo) FollowService {
	return &FollowServiceImpl{followRepo: followRepo}
}

func (s *FollowServiceImpl) ListFollowers(ctx context.Context, userID gocql.UUID, limit int) ([]*model.Follower, error) {
	return s.followRepo.ListFollowers(ctx, userID, limit)
}

func (s *FollowServiceImpl) ListFollowees(ctx context.Context, userID gocql.UUID, limit int) ([]*model.Followee, error) {
	return s.followRepo.ListFollowees(ctx, userID, limit)
}

// CreateFollower 两张方向表互不感知，调用方各写各的
func (s *FollowServiceImpl) CreateFollower(ctx context.Context, followDTO *dto.CreateFollowerDTO) (*model.Follower, error) {
	follower := &model.Follower{
		UserID:     followDTO.UserID,
		FollowerID: followDTO.FollowerID,
	}
	if followDTO.FollowedAt != nil {
		follower.FollowedAt = *followDTO.FollowedAt
	} else {
		follower.FollowedAt = time.Now().UTC()
	}

	if err := s.followRepo.CreateFollower(ctx, follower); err != nil {
		return nil, err
	}
	return follower, nil
}

func (s *FollowServiceImpl) CreateFollowee(ctx context.Context, followDTO *dto.CreateFolloweeDTO) (*model.Followee, error) {
	followee := &model.Followee{
		UserID:     followDTO.UserID,
		FolloweeID: followDTO.FolloweeID,
	}
	if followDTO.FollowedAt != nil {
		followee.FollowedAt = *followDTO.FollowedAt
	} else {
		followee.FollowedAt = time.Now().UTC()
	}

	if err := s.followRepo.CreateFollowee(ctx, followee); err != nil {
		return nil, err
	}
	return followee, nil
}

func (s *FollowServiceImpl) DeleteFollower(ctx context.Context, userID, followerID gocql.UUID) (*model.Follower, error) {
	follower, err := s.followRepo.GetFollower(ctx, userID, followerID)
	if err != nil {
		return nil, err
	}
	if follower == nil {
		return nil, ErrFollowerNotFound
	}
	if err := s.followRepo.DeleteFollower(ctx, userID, followerID); err != nil {
		return nil, err
	}
	return follower, nil
}

func (s *FollowServiceImpl) DeleteFollowee(ctx context.Context, userID, followeeID gocql.UUID) (*model.Followee, error) {
	followee, err := s.followRepo.GetFollowee(ctx, userID, followeeID)
	if err != nil {
		return nil, err
	}
	if followee == nil {
		return nil, ErrFolloweeNotFound
	}
	if err := s.followRepo.DeleteFollowee(ctx, userID, followeeID); err != nil {
		return nil, err
	}
	return followee, nil
}
