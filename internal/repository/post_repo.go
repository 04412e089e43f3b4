package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gocql/gocql"

	"osohub/internal/model"
)

type PostRepo interface {
	ListByUser(ctx context.Context, userID gocql.UUID, limit int) ([]*model.PostByUser, error)
	ListByDateBucket(ctx context.Context, dateBucket string, limit int) ([]*model.PostByDateBucket, error)
	ListByKeyword(ctx context.Context, keyword string, limit int) ([]*model.PostByKeyword, error)
	CreatePost(ctx context.Context, post *model.PostByUser) error
	GetByUser(ctx context.Context, userID, postID gocql.UUID) (*model.PostByUser, error)
	GetByDateBucket(ctx context.Context, dateBucket string, postID gocql.UUID) (*model.PostByDateBucket, error)
	GetByKeyword(ctx context.Context, keyword string, postID gocql.UUID) (*model.PostByKeyword, error)
	DeleteByUser(ctx context.Context, userID gocql.UUID, createdAt time.Time, postID gocql.UUID) error
	DeleteByDateBucket(ctx context.Context, dateBucket string, createdAt time.Time, postID gocql.UUID) error
	DeleteByKeyword(ctx context.Context, keyword string, createdAt time.Time, postID gocql.UUID) error

	// 冗余视图的写入口，仅由摄取管道使用
	CreateByDateBucket(ctx context.Context, post *model.PostByDateBucket) error
	CreateByKeyword(ctx context.Context, post *model.PostByKeyword) error
}

type PostRepoImpl struct {
	session *gocql.Session
}

func NewPostRepo(session *gocql.Session) PostRepo {
	return &PostRepoImpl{session: session}
}

func (s *PostRepoImpl) ListByUser(ctx context.Context, userID gocql.UUID, limit int) ([]*model.PostByUser, error) {
	iter := s.session.Query(
		`SELECT user_id, created_at, post_id, title, description, image_urls
		 FROM posts_by_user WHERE user_id = ? LIMIT ?`, userID, limit).
		WithContext(ctx).
		Iter()

	posts := make([]*model.PostByUser, 0, limit)
	var p model.PostByUser
	for iter.Scan(&p.UserID, &p.CreatedAt, &p.PostID, &p.Title, &p.Description, &p.ImageURLs) {
		cp := p
		posts = append(posts, &cp)
		p = model.PostByUser{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) ListByDateBucket(ctx context.Context, dateBucket string, limit int) ([]*model.PostByDateBucket, error) {
	iter := s.session.Query(
		`SELECT date_bucket, created_at, post_id, user_id, title, description, image_urls
		 FROM posts_by_date_bucket WHERE date_bucket = ? LIMIT ?`, dateBucket, limit).
		WithContext(ctx).
		Iter()

	posts := make([]*model.PostByDateBucket, 0, limit)
	var p model.PostByDateBucket
	for iter.Scan(&p.DateBucket, &p.CreatedAt, &p.PostID, &p.UserID, &p.Title, &p.Description, &p.ImageURLs) {
		cp := p
		posts = append(posts, &cp)
		p = model.PostByDateBucket{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) ListByKeyword(ctx context.Context, keyword string, limit int) ([]*model.PostByKeyword, error) {
	iter := s.session.Query(
		`SELECT keyword, created_at, post_id, user_id
		 FROM posts_by_keyword WHERE keyword = ? LIMIT ?`, keyword, limit).
		WithContext(ctx).
		Iter()

	posts := make([]*model.PostByKeyword, 0, limit)
	var p model.PostByKeyword
	for iter.Scan(&p.Keyword, &p.CreatedAt, &p.PostID, &p.UserID) {
		cp := p
		posts = append(posts, &cp)
		p = model.PostByKeyword{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost 只写主表，冗余视图由摄取管道补齐
func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.PostByUser) error {
	return s.session.Query(
		`INSERT INTO posts_by_user (user_id, created_at, post_id, title, description, image_urls)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		post.UserID, post.CreatedAt, post.PostID, post.Title, post.Description, post.ImageURLs).
		WithContext(ctx).
		Exec()
}

// GetByUser 在分区内按 post_id 过滤，用于找回聚簇键 created_at
func (s *PostRepoImpl) GetByUser(ctx context.Context, userID, postID gocql.UUID) (*model.PostByUser, error) {
	var p model.PostByUser
	err := s.session.Query(
		`SELECT user_id, created_at, post_id, title, description, image_urls
		 FROM posts_by_user WHERE user_id = ? AND post_id = ? ALLOW FILTERING`, userID, postID).
		WithContext(ctx).
		Scan(&p.UserID, &p.CreatedAt, &p.PostID, &p.Title, &p.Description, &p.ImageURLs)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *PostRepoImpl) GetByDateBucket(ctx context.Context, dateBucket string, postID gocql.UUID) (*model.PostByDateBucket, error) {
	var p model.PostByDateBucket
	err := s.session.Query(
		`SELECT date_bucket, created_at, post_id, user_id, title, description, image_urls
		 FROM posts_by_date_bucket WHERE date_bucket = ? AND post_id = ? ALLOW FILTERING`, dateBucket, postID).
		WithContext(ctx).
		Scan(&p.DateBucket, &p.CreatedAt, &p.PostID, &p.UserID, &p.Title, &p.Description, &p.ImageURLs)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *PostRepoImpl) GetByKeyword(ctx context.Context, keyword string, postID gocql.UUID) (*model.PostByKeyword, error) {
	var p model.PostByKeyword
	err := s.session.Query(
		`SELECT keyword, created_at, post_id, user_id
		 FROM posts_by_keyword WHERE keyword = ? AND post_id = ? ALLOW FILTERING`, keyword, postID).
		WithContext(ctx).
		Scan(&p.Keyword, &p.CreatedAt, &p.PostID, &p.UserID)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *PostRepoImpl) DeleteByUser(ctx context.Context, userID gocql.UUID, createdAt time.Time, postID gocql.UUID) error {
	return s.session.Query(
		`DELETE FROM posts_by_user WHERE user_id = ? AND created_at = ? AND post_id = ?`,
		userID, createdAt, postID).
		WithContext(ctx).
		Exec()
}

func (s *PostRepoImpl) DeleteByDateBucket(ctx context.Context, dateBucket string, createdAt time.Time, postID gocql.UUID) error {
	return s.session.Query(
		`DELETE FROM posts_by_date_bucket WHERE date_bucket = ? AND created_at = ? AND post_id = ?`,
		dateBucket, createdAt, postID).
		WithContext(ctx).
		Exec()
}

func (s *PostRepoImpl) DeleteByKeyword(ctx context.Context, keyword string, createdAt time.Time, postID gocql.UUID) error {
	return s.session.Query(
		`DELETE FROM posts_by_keyword WHERE keyword = ? AND created_at = ? AND post_id = ?`,
		keyword, createdAt, postID).
		WithContext(ctx).
		Exec()
}

func (s *PostRepoImpl) CreateByDateBucket(ctx context.Context, post *model.PostByDateBucket) error {
	return s.session.Query(
		`INSERT INTO posts_by_date_bucket (date_bucket, created_at, post_id, user_id, title, description, image_urls)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		post.DateBucket, post.CreatedAt, post.PostID, post.UserID, post.Title, post.Description, post.ImageURLs).
		WithContext(ctx).
		Exec()
}

func (s *PostRepoImpl) CreateByKeyword(ctx context.Context, post *model.PostByKeyword) error {
	return s.session.Query(
		`INSERT INTO posts_by_keyword (keyword, created_at, post_id, user_id)
		 VALUES (?, ?, ?, ?)`,
		post.Keyword, post.CreatedAt, post.PostID, post.UserID).
		WithContext(ctx).
		Exec()
}
