package service

import (
	"context"
	"time"

	"github.com/gocql/gocql"
	"github.com/jinzhu/copier"

	"osohub/internal/api/dto"
	"osohub/internal/model"
	"osohub/internal/pkg/util"
	"osohub/internal/repository"
)

type UserService interface {
	GetUser(ctx context.Context, userID gocql.UUID) (*model.User, error)
	ListUsers(ctx context.Context, limit int) ([]*model.User, error)
	CreateUser(ctx context.Context, userDTO *dto.CreateUserDTO) (*model.User, error)
	UpdateUser(ctx context.Context, userID gocql.UUID, userDTO *dto.CreateUserDTO) (*model.User, error)
	PartialUpdateUser(ctx context.Context, userID gocql.UUID, patchDTO *dto.UserPatchDTO) (*model.User, error)
	DeleteUser(ctx context.Context, userID gocql.UUID) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetUser(ctx context.Context, userID gocql.UUID) (*model.User, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context, limit int) ([]*model.User, error) {
	return s.userRepo.ListUsers(ctx, limit)
}

// CreateUser 服务端补齐 user_id 与 created_at，回显完整实体
func (s *UserServiceImpl) CreateUser(ctx context.Context, userDTO *dto.CreateUserDTO) (*model.User, error) {
	user := &model.User{}
	if err := copier.Copy(user, userDTO); err != nil {
		return nil, err
	}

	userID, err := newRandomUUID()
	if err != nil {
		return nil, err
	}
	user.UserID = userID
	user.CreatedAt = time.Now().UTC()

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser 全量更新，先验证存在性，再覆盖可编辑字段并回读
func (s *UserServiceImpl) UpdateUser(ctx context.Context, userID gocql.UUID, userDTO *dto.CreateUserDTO) (*model.User, error) {
	existing, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	user := &model.User{}
	if err := copier.Copy(user, userDTO); err != nil {
		return nil, err
	}
	user.UserID = userID

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return s.userRepo.GetUser(ctx, userID)
}

// PartialUpdateUser 只更新请求中出现的字段；空 patch 返回 400，邮箱不合法返回 422
func (s *UserServiceImpl) PartialUpdateUser(ctx context.Context, userID gocql.UUID, patchDTO *dto.UserPatchDTO) (*model.User, error) {
	existing, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	if patchDTO.Email != nil && !util.IsEmail(*patchDTO.Email) {
		return nil, ErrInvalidEmail
	}

	patch := &repository.UserPatch{
		Username:     patchDTO.Username,
		Email:        patchDTO.Email,
		PasswordHash: patchDTO.PasswordHash,
		FullName:     patchDTO.FullName,
		Bio:          patchDTO.Bio,
		AvatarURL:    patchDTO.AvatarURL,
	}
	if patch.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	if err := s.userRepo.PartialUpdateUser(ctx, userID, patch); err != nil {
		return nil, err
	}
	return s.userRepo.GetUser(ctx, userID)
}

// DeleteUser 先查存在性；重复删除返回 404 而不是静默成功
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID gocql.UUID) error {
	existing, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrUserNotFound
	}
	return s.userRepo.DeleteUser(ctx, userID)
}
