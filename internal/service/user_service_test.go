package service_test

import (
	"context"
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"osohub/internal/api/dto"
	"osohub/internal/model"
	"osohub/internal/service"
)

func strPtr(s string) *string { return &s }

func TestUserServiceCreateUser(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("CreateUser", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	svc := service.NewUserService(repo)
	user, err := svc.CreateUser(context.Background(), &dto.CreateUserDTO{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Bio:          strPtr("hello"),
	})

	assert.NoError(t, err)
	assert.NotEqual(t, gocql.UUID{}, user.UserID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hello", *user.Bio)
	repo.AssertExpectations(t)
}

func TestUserServiceGetUserNotFound(t *testing.T) {
	userID := gocql.TimeUUID()

	repo := new(MockUserRepo)
	repo.On("GetUser", mock.Anything, userID).Return(nil, nil)

	svc := service.NewUserService(repo)
	user, err := svc.GetUser(context.Background(), userID)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUserServicePartialUpdateEmptyPatch(t *testing.T) {
	userID := gocql.TimeUUID()

	repo := new(MockUserRepo)
	repo.On("GetUser", mock.Anything, userID).Return(&model.User{UserID: userID}, nil)

	svc := service.NewUserService(repo)
	_, err := svc.PartialUpdateUser(context.Background(), userID, &dto.UserPatchDTO{})

	assert.ErrorIs(t, err, service.ErrNoFieldsToUpdate)
	// 空 patch 不能落库
	repo.AssertNotCalled(t, "PartialUpdateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserServicePartialUpdateInvalidEmail(t *testing.T) {
	userID := gocql.TimeUUID()

	repo := new(MockUserRepo)
	repo.On("GetUser", mock.Anything, userID).Return(&model.User{UserID: userID}, nil)

	svc := service.NewUserService(repo)
	_, err := svc.PartialUpdateUser(context.Background(), userID, &dto.UserPatchDTO{
		Email: strPtr("not-an-email"),
	})

	assert.ErrorIs(t, err, service.ErrInvalidEmail)
	repo.AssertNotCalled(t, "PartialUpdateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserServicePartialUpdateOnlyGivenFields(t *testing.T) {
	userID := gocql.TimeUUID()
	existing := &model.User{UserID: userID, Username: "alice", Email: "alice@example.com"}
	updated := &model.User{UserID: userID, Username: "alice2", Email: "alice@example.com"}

	repo := new(MockUserRepo)
	repo.On("GetUser", mock.Anything, userID).Return(existing, nil).Once()
	repo.On("PartialUpdateUser", mock.Anything, userID, mock.Anything).Return(nil)
	repo.On("GetUser", mock.Anything, userID).Return(updated, nil).Once()

	svc := service.NewUserService(repo)
	user, err := svc.PartialUpdateUser(context.Background(), userID, &dto.UserPatchDTO{
		Username: strPtr("alice2"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "alice2", user.Username)
	repo.AssertExpectations(t)
}

func TestUserServiceDeleteUserTwice(t *testing.T) {
	userID := gocql.TimeUUID()

	repo := new(MockUserRepo)
	repo.On("GetUser", mock.Anything, userID).Return(&model.User{UserID: userID}, nil).Once()
	repo.On("DeleteUser", mock.Anything, userID).Return(nil).Once()
	repo.On("GetUser", mock.Anything, userID).Return(nil, nil).Once()

	svc := service.NewUserService(repo)

	assert.NoError(t, svc.DeleteUser(context.Background(), userID))
	// 第二次删除同一行要报 404，而不是静默成功
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), userID), service.ErrUserNotFound)
	repo.AssertExpectations(t)
}
