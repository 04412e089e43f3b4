package service_test

import (
	"context"
	"time"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/mock"

	"osohub/internal/model"
	"osohub/internal/repository"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetUser(ctx context.Context, userID gocql.UUID) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) ListUsers(ctx context.Context, limit int) ([]*model.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) UpdateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) PartialUpdateUser(ctx context.Context, userID gocql.UUID, patch *repository.UserPatch) error {
	args := m.Called(ctx, userID, patch)
	return args.Error(0)
}

func (m *MockUserRepo) DeleteUser(ctx context.Context, userID gocql.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) ListByUser(ctx context.Context, userID gocql.UUID, limit int) ([]*model.PostByUser, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PostByUser), args.Error(1)
}

func (m *MockPostRepo) ListByDateBucket(ctx context.Context, dateBucket string, limit int) ([]*model.PostByDateBucket, error) {
	args := m.Called(ctx, dateBucket, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PostByDateBucket), args.Error(1)
}

func (m *MockPostRepo) ListByKeyword(ctx context.Context, keyword string, limit int) ([]*model.PostByKeyword, error) {
	args := m.Called(ctx, keyword, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PostByKeyword), args.Error(1)
}

func (m *MockPostRepo) CreatePost(ctx context.Context, post *model.PostByUser) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepo) GetByUser(ctx context.Context, userID, postID gocql.UUID) (*model.PostByUser, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostByUser), args.Error(1)
}

func (m *MockPostRepo) GetByDateBucket(ctx context.Context, dateBucket string, postID gocql.UUID) (*model.PostByDateBucket, error) {
	args := m.Called(ctx, dateBucket, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostByDateBucket), args.Error(1)
}

func (m *MockPostRepo) GetByKeyword(ctx context.Context, keyword string, postID gocql.UUID) (*model.PostByKeyword, error) {
	args := m.Called(ctx, keyword, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostByKeyword), args.Error(1)
}

func (m *MockPostRepo) DeleteByUser(ctx context.Context, userID gocql.UUID, createdAt time.Time, postID gocql.UUID) error {
	args := m.Called(ctx, userID, createdAt, postID)
	return args.Error(0)
}

func (m *MockPostRepo) DeleteByDateBucket(ctx context.Context, dateBucket string, createdAt time.Time, postID gocql.UUID) error {
	args := m.Called(ctx, dateBucket, createdAt, postID)
	return args.Error(0)
}

func (m *MockPostRepo) DeleteByKeyword(ctx context.Context, keyword string, createdAt time.Time, postID gocql.UUID) error {
	args := m.Called(ctx, keyword, createdAt, postID)
	return args.Error(0)
}

func (m *MockPostRepo) CreateByDateBucket(ctx context.Context, post *model.PostByDateBucket) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepo) CreateByKeyword(ctx context.Context, post *model.PostByKeyword) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) ListByPost(ctx context.Context, postID gocql.UUID, limit int) ([]*model.Comment, error) {
	args := m.Called(ctx, postID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCommentRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepo) GetComment(ctx context.Context, postID, commentID gocql.UUID) (*model.Comment, error) {
	args := m.Called(ctx, postID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepo) UpdateContent(ctx context.Context, postID gocql.UUID, createdAt time.Time, commentID gocql.UUID, content string) error {
	args := m.Called(ctx, postID, createdAt, commentID, content)
	return args.Error(0)
}

type MockLikeRepo struct {
	mock.Mock
}

func (m *MockLikeRepo) GetCount(ctx context.Context, postID gocql.UUID) (*model.LikeCount, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LikeCount), args.Error(1)
}

func (m *MockLikeRepo) ListByPost(ctx context.Context, postID gocql.UUID, limit int) ([]*model.LikeByPost, error) {
	args := m.Called(ctx, postID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.LikeByPost), args.Error(1)
}

func (m *MockLikeRepo) GetLike(ctx context.Context, postID, userID gocql.UUID) (*model.LikeByPost, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LikeByPost), args.Error(1)
}

func (m *MockLikeRepo) CreateLike(ctx context.Context, like *model.LikeByPost) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepo) DeleteLike(ctx context.Context, postID, userID gocql.UUID) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockLikeRepo) AdjustCount(ctx context.Context, postID gocql.UUID, delta int64) error {
	args := m.Called(ctx, postID, delta)
	return args.Error(0)
}

func (m *MockLikeRepo) ListCounts(ctx context.Context) ([]*model.LikeCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.LikeCount), args.Error(1)
}

func (m *MockLikeRepo) CountLikes(ctx context.Context, postID gocql.UUID) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

type MockFollowRepo struct {
	mock.Mock
}

func (m *MockFollowRepo) ListFollowers(ctx context.Context, userID gocql.UUID, limit int) ([]*model.Follower, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Follower), args.Error(1)
}

func (m *MockFollowRepo) ListFollowees(ctx context.Context, userID gocql.UUID, limit int) ([]*model.Followee, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Followee), args.Error(1)
}

func (m *MockFollowRepo) GetFollower(ctx context.Context, userID, followerID gocql.UUID) (*model.Follower, error) {
	args := m.Called(ctx, userID, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follower), args.Error(1)
}

func (m *MockFollowRepo) GetFollowee(ctx context.Context, userID, followeeID gocql.UUID) (*model.Followee, error) {
	args := m.Called(ctx, userID, followeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Followee), args.Error(1)
}

func (m *MockFollowRepo) CreateFollower(ctx context.Context, follower *model.Follower) error {
	args := m.Called(ctx, follower)
	return args.Error(0)
}

func (m *MockFollowRepo) CreateFollowee(ctx context.Context, followee *model.Followee) error {
	args := m.Called(ctx, followee)
	return args.Error(0)
}

func (m *MockFollowRepo) DeleteFollower(ctx context.Context, userID, followerID gocql.UUID) error {
	args := m.Called(ctx, userID, followerID)
	return args.Error(0)
}

func (m *MockFollowRepo) DeleteFollowee(ctx context.Context, userID, followeeID gocql.UUID) error {
	args := m.Called(ctx, userID, followeeID)
	return args.Error(0)
}

type MockFeedRepo struct {
	mock.Mock
}

func (m *MockFeedRepo) ListByUser(ctx context.Context, userID gocql.UUID, limit int) ([]*model.FeedItem, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FeedItem), args.Error(1)
}

func (m *MockFeedRepo) GetItem(ctx context.Context, userID, postID gocql.UUID) (*model.FeedItem, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FeedItem), args.Error(1)
}

func (m *MockFeedRepo) DeleteItem(ctx context.Context, userID gocql.UUID, postCreatedAt time.Time, postID gocql.UUID) error {
	args := m.Called(ctx, userID, postCreatedAt, postID)
	return args.Error(0)
}
