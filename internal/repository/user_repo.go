package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/gocql/gocql"

	"osohub/internal/model"
)

type UserRepo interface {
	GetUser(ctx context.Context, userID gocql.UUID) (*model.User, error)
	ListUsers(ctx context.Context, limit int) ([]*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, user *model.User) error
	PartialUpdateUser(ctx context.Context, userID gocql.UUID, patch *UserPatch) error
	DeleteUser(ctx context.Context, userID gocql.UUID) error
}

// UserPatch 部分更新的可选字段集合，列名映射在编译期固定
type UserPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
	FullName     *string
	Bio          *string
	AvatarURL    *string
}

// IsEmpty 是否没有任何待更新字段
func (p *UserPatch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.PasswordHash == nil &&
		p.FullName == nil && p.Bio == nil && p.AvatarURL == nil
}

type UserRepoImpl struct {
	session *gocql.Session
}

func NewUserRepo(session *gocql.Session) UserRepo {
	return &UserRepoImpl{session: session}
}

// GetUser 按主键查询用户，未找到返回 nil
func (s *UserRepoImpl) GetUser(ctx context.Context, userID gocql.UUID) (*model.User, error) {
	var u model.User
	err := s.session.Query(
		`SELECT user_id, username, email, password_hash, full_name, bio, avatar_url, created_at
		 FROM users_by_id WHERE user_id = ?`, userID).
		WithContext(ctx).
		Scan(&u.UserID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.Bio, &u.AvatarURL, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// ListUsers 列出用户，limit 作为绑定参数而不是拼接
func (s *UserRepoImpl) ListUsers(ctx context.Context, limit int) ([]*model.User, error) {
	iter := s.session.Query(
		`SELECT user_id, username, email, password_hash, full_name, bio, avatar_url, created_at
		 FROM users_by_id LIMIT ?`, limit).
		WithContext(ctx).
		Iter()

	users := make([]*model.User, 0, limit)
	var u model.User
	for iter.Scan(&u.UserID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.Bio, &u.AvatarURL, &u.CreatedAt) {
		cp := u
		users = append(users, &cp)
		u = model.User{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.session.Query(
		`INSERT INTO users_by_id (user_id, username, email, password_hash, full_name, bio, avatar_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.UserID, user.Username, user.Email, user.PasswordHash,
		user.FullName, user.Bio, user.AvatarURL, user.CreatedAt).
		WithContext(ctx).
		Exec()
}

// UpdateUser 覆盖所有可编辑字段
func (s *UserRepoImpl) UpdateUser(ctx context.Context, user *model.User) error {
	return s.session.Query(
		`UPDATE users_by_id SET username = ?, email = ?, password_hash = ?, full_name = ?, bio = ?, avatar_url = ?
		 WHERE user_id = ?`,
		user.Username, user.Email, user.PasswordHash,
		user.FullName, user.Bio, user.AvatarURL, user.UserID).
		WithContext(ctx).
		Exec()
}

// PartialUpdateUser 只更新 patch 中已填充的字段
func (s *UserRepoImpl) PartialUpdateUser(ctx context.Context, userID gocql.UUID, patch *UserPatch) error {
	assignments := make([]string, 0, 6)
	args := make([]interface{}, 0, 7)

	if patch.Username != nil {
		assignments = append(assignments, "username = ?")
		args = append(args, *patch.Username)
	}
	if patch.Email != nil {
		assignments = append(assignments, "email = ?")
		args = append(args, *patch.Email)
	}
	if patch.PasswordHash != nil {
		assignments = append(assignments, "password_hash = ?")
		args = append(args, *patch.PasswordHash)
	}
	if patch.FullName != nil {
		assignments = append(assignments, "full_name = ?")
		args = append(args, *patch.FullName)
	}
	if patch.Bio != nil {
		assignments = append(assignments, "bio = ?")
		args = append(args, *patch.Bio)
	}
	if patch.AvatarURL != nil {
		assignments = append(assignments, "avatar_url = ?")
		args = append(args, *patch.AvatarURL)
	}

	args = append(args, userID)
	stmt := "UPDATE users_by_id SET " + strings.Join(assignments, ", ") + " WHERE user_id = ?"

	return s.session.Query(stmt, args...).WithContext(ctx).Exec()
}

func (s *UserRepoImpl) DeleteUser(ctx context.Context, userID gocql.UUID) error {
	return s.session.Query(`DELETE FROM users_by_id WHERE user_id = ?`, userID).
		WithContext(ctx).
		Exec()
}
