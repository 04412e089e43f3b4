package service

import (
	"context"
	"time"

	"github.com/gocql/gocql"
	"github.com/jinzhu/copier"

	"osohub/internal/api/dto"
	"osohub/internal/model"
	"osohub/internal/repository"
)

type PostService interface {
	ListByUser(ctx context.Context, userID gocql.UUID, limit int) ([]*model.PostByUser, error)
	ListByDateBucket(ctx context.Context, dateBucket string, limit int) ([]*model.PostByDateBucket, error)
	ListByKeyword(ctx context.Context, keyword string, limit int) ([]*model.PostByKeyword, error)
	CreatePost(ctx context.Context, postDTO *dto.CreatePostDTO) (*model.PostByUser, error)
	DeleteByUser(ctx context.Context, userID, postID gocql.UUID) (*model.PostByUser, error)
	DeleteByDateBucket(ctx context.Context, dateBucket string, postID gocql.UUID) (*model.PostByDateBucket, error)
	DeleteByKeyword(ctx context.Context, keyword string, postID gocql.UUID) (*model.PostByKeyword, error)
}

type PostServiceImpl struct {
	postRepo repository.PostRepo
}

func NewPostService(postRepo repository.PostRepo) PostService {
	return &PostServiceImpl{postRepo: postRepo}
}

func (s *PostServiceImpl) ListByUser(ctx context.Context, userID gocql.UUID, limit int) ([]*model.PostByUser, error) {
	return s.postRepo.ListByUser(ctx, userID, limit)
}

func (s *PostServiceImpl) ListByDateBucket(ctx context.Context, dateBucket string, limit int) ([]*model.PostByDateBucket, error) {
	return s.postRepo.ListByDateBucket(ctx, dateBucket, limit)
}

func (s *PostServiceImpl) ListByKeyword(ctx context.Context, keyword string, limit int) ([]*model.PostByKeyword, error) {
	return s.postRepo.ListByKeyword(ctx, keyword, limit)
}

// CreatePost 只写 posts_by_user；date_bucket / keyword 视图由摄取管道补齐
func (s *PostServiceImpl) CreatePost(ctx context.Context, postDTO *dto.CreatePostDTO) (*model.PostByUser, error) {
	post := &model.PostByUser{}
	if err := copier.Copy(post, postDTO); err != nil {
		return nil, err
	}

	if postDTO.PostID != nil {
		post.PostID = *postDTO.PostID
	} else {
		postID, err := newRandomUUID()
		if err != nil {
			return nil, err
		}
		post.PostID = postID
	}

	if postDTO.CreatedAt != nil {
		post.CreatedAt = *postDTO.CreatedAt
	} else {
		post.CreatedAt = time.Now().UTC()
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeleteByUser 先回查找回 created_at，再按完整主键删除，返回删除前的数据
func (s *PostServiceImpl) DeleteByUser(ctx context.Context, userID, postID gocql.UUID) (*model.PostByUser, error) {
	post, err := s.postRepo.GetByUser(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if err := s.postRepo.DeleteByUser(ctx, userID, post.CreatedAt, postID); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostServiceImpl) DeleteByDateBucket(ctx context.Context, dateBucket string, postID gocql.UUID) (*model.PostByDateBucket, error) {
	post, err := s.postRepo.GetByDateBucket(ctx, dateBucket, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if err := s.postRepo.DeleteByDateBucket(ctx, dateBucket, post.CreatedAt, postID); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostServiceImpl) DeleteByKeyword(ctx context.Context, keyword string, postID gocql.UUID) (*model.PostByKeyword, error) {
	post, err := s.postRepo.GetByKeyword(ctx, keyword, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if err := s.postRepo.DeleteByKeyword(ctx, keyword, post.CreatedAt, postID); err != nil {
		return nil, err
	}
	return post, nil
}
