package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gocql/gocql"

	"osohub/internal/model"
)

type CommentRepo interface {
	ListByPost(ctx context.Context, postID gocql.UUID, limit int) ([]*model.Comment, error)
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, postID, commentID gocql.UUID) (*model.Comment, error)
	UpdateContent(ctx context.Context, postID gocql.UUID, createdAt time.Time, commentID gocql.UUID, content string) error
}

type CommentRepoImpl struct {
	session *gocql.Session
}

func NewCommentRepo(session *gocql.Session) CommentRepo {
	return &CommentRepoImpl{session: session}
}

func (s *CommentRepoImpl) ListByPost(ctx context.Context, postID gocql.UUID, limit int) ([]*model.Comment, error) {
	iter := s.session.Query(
		`SELECT post_id, created_at, comment_id, commenter_id, content
		 FROM comments_by_post WHERE post_id = ? LIMIT ?`, postID, limit).
		WithContext(ctx).
		Iter()

	comments := make([]*model.Comment, 0, limit)
	var c model.Comment
	for iter.Scan(&c.PostID, &c.CreatedAt, &c.CommentID, &c.CommenterID, &c.Content) {
		cp := c
		comments = append(comments, &cp)
		c = model.Comment{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.session.Query(
		`INSERT INTO comments_by_post (post_id, created_at, comment_id, commenter_id, content)
		 VALUES (?, ?, ?, ?, ?)`,
		comment.PostID, comment.CreatedAt, comment.CommentID, comment.CommenterID, comment.Content).
		WithContext(ctx).
		Exec()
}

// GetComment 在分区内按 comment_id 过滤，用于找回聚簇键 created_at
func (s *CommentRepoImpl) GetComment(ctx context.Context, postID, commentID gocql.UUID) (*model.Comment, error) {
	var c model.Comment
	err := s.session.Query(
		`SELECT post_id, created_at, comment_id, commenter_id, content
		 FROM comments_by_post WHERE post_id = ? AND comment_id = ? ALLOW FILTERING`, postID, commentID).
		WithContext(ctx).
		Scan(&c.PostID, &c.CreatedAt, &c.CommentID, &c.CommenterID, &c.Content)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *CommentRepoImpl) UpdateContent(ctx context.Context, postID gocql.UUID, createdAt time.Time, commentID gocql.UUID, content string) error {
	return s.session.Query(
		`UPDATE comments_by_post SET content = ? WHERE post_id = ? AND created_at = ? AND comment_id = ?`,
		content, postID, createdAt, commentID).
		WithContext(ctx).
		Exec()
}
