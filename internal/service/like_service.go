package service

import (
	"context"
	log "log/slog"
	"time"

	"github.com/gocql/gocql"

	"osohub/internal/api/dto"
	"osohub/internal/model"
	"osohub/internal/repository"
)

type LikeService interface {
	GetCount(ctx context.Context, postID gocql.UUID) (*model.LikeCount, error)
	ListByPost(ctx context.Context, postID gocql.UUID, limit int) ([]*model.LikeByPost, error)
	CreateLike(ctx context.Context, likeDTO *dto.CreateLikeDTO) (*model.LikeByPost, error)
	DeleteLike(ctx context.Context, postID, userID gocql.UUID) (*model.LikeByPost, error)
	ReconcileCounts(ctx context.Context) (int, error)
}

type LikeServiceImpl struct {
	likeRepo repository.LikeRepo
}

func NewLikeService(likeRepo repository.LikeRepo) LikeService {
	return &LikeServiceImpl{likeRepo: likeRepo}
}

func (s *LikeServiceImpl) GetCount(ctx context.Context, postID gocql.UUID) (*model.LikeCount, error) {
	count, err := s.likeRepo.GetCount(ctx, postID)
	if err != nil {
		return nil, err
	}
	if count == nil {
		return nil, ErrPostNotFound
	}
	return count, nil
}

func (s *LikeServiceImpl) ListByPost(ctx context.Context, postID gocql.UUID, limit int) ([]*model.LikeByPost, error) {
	return s.likeRepo.ListByPost(ctx, postID, limit)
}

// CreateLike 先写点赞行再 +1 计数器。两步之间不是原子的：
// 中间崩溃会让计数器和行集合出现漂移，由对账任务兜底。
func (s *LikeServiceImpl) CreateLike(ctx context.Context, likeDTO *dto.CreateLikeDTO) (*model.LikeByPost, error) {
	like := &model.LikeByPost{
		PostID: likeDTO.PostID,
		UserID: likeDTO.UserID,
	}
	if likeDTO.LikedAt != nil {
		like.LikedAt = *likeDTO.LikedAt
	} else {
		like.LikedAt = time.Now().UTC()
	}

	if err := s.likeRepo.CreateLike(ctx, like); err != nil {
		return nil, err
	}
	if err := s.likeRepo.AdjustCount(ctx, like.PostID, 1); err != nil {
		return nil, err
	}
	return like, nil
}

// DeleteLike 回查确认存在后删除并 -1 计数器，返回删除前的数据
func (s *LikeServiceImpl) DeleteLike(ctx context.Context, postID, userID gocql.UUID) (*model.LikeByPost, error) {
	like, err := s.likeRepo.GetLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if like == nil {
		return nil, ErrLikeNotFound
	}

	if err := s.likeRepo.DeleteLike(ctx, postID, userID); err != nil {
		return nil, err
	}
	if err := s.likeRepo.AdjustCount(ctx, postID, -1); err != nil {
		return nil, err
	}
	return like, nil
}

// ReconcileCounts 重数每个计数器对应的点赞行，按差值修正漂移，返回修正条数
func (s *LikeServiceImpl) ReconcileCounts(ctx context.Context) (int, error) {
	counts, err := s.likeRepo.ListCounts(ctx)
	if err != nil {
		return 0, err
	}

	fixed := 0
	for _, c := range counts {
		actual, err := s.likeRepo.CountLikes(ctx, c.PostID)
		if err != nil {
			log.WarnContext(ctx, "count likes error", "post_id", c.PostID.String(), "err", err)
			continue
		}

		delta := actual - c.Likes
		if delta == 0 {
			continue
		}
		if err := s.likeRepo.AdjustCount(ctx, c.PostID, delta); err != nil {
			log.WarnContext(ctx, "adjust like count error", "post_id", c.PostID.String(), "err", err)
			continue
		}
		fixed++
	}
	return fixed, nil
}
