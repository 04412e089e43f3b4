package service

import (
	"context"
	"time"

	"github.com/gocql/gocql"

	"osohub/internal/api/dto"
	"osohub/internal/model"
	"osohub/internal/repository"
)

type CommentService interface {
	ListByPost(ctx context.Context, postID gocql.UUID, limit int) ([]*model.Comment, error)
	CreateComment(ctx context.Context, commentDTO *dto.CreateCommentDTO) (*model.Comment, error)
	UpdateComment(ctx context.Context, postID, commentID gocql.UUID, content string) (*model.Comment, error)
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
}

func NewCommentService(commentRepo repository.CommentRepo) CommentService {
	return &CommentServiceImpl{commentRepo: commentRepo}
}

func (s *CommentServiceImpl) ListByPost(ctx context.Context, postID gocql.UUID, limit int) ([]*model.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID, limit)
}

// CreateComment comment_id 缺省时用时间型 UUID，保持分区内的时序
func (s *CommentServiceImpl) CreateComment(ctx context.Context, commentDTO *dto.CreateCommentDTO) (*model.Comment, error) {
	comment := &model.Comment{
		PostID:      commentDTO.PostID,
		CommenterID: commentDTO.CommenterID,
		Content:     commentDTO.Content,
	}

	if commentDTO.CommentID != nil {
		comment.CommentID = *commentDTO.CommentID
	} else {
		comment.CommentID = gocql.TimeUUID()
	}

	if commentDTO.CreatedAt != nil {
		comment.CreatedAt = *commentDTO.CreatedAt
	} else {
		comment.CreatedAt = time.Now().UTC()
	}

	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateComment 先回查找回 created_at，再按完整主键更新正文
func (s *CommentServiceImpl) UpdateComment(ctx context.Context, postID, commentID gocql.UUID, content string) (*model.Comment, error) {
	comment, err := s.commentRepo.GetComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	if err := s.commentRepo.UpdateContent(ctx, postID, comment.CreatedAt, commentID, content); err != nil {
		return nil, err
	}

	comment.Content = content
	return comment, nil
}
