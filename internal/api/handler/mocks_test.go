package handler_test

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/stretchr/testify/mock"

	"osohub/internal/api"
	"osohub/internal/api/dto"
	"osohub/internal/api/handler"
	"osohub/internal/model"
)

// newTestRouter 用 mock 服务拼出完整路由
func newTestRouter(userSvc *MockUserService, postSvc *MockPostService, commentSvc *MockCommentService,
	likeSvc *MockLikeService, followSvc *MockFollowService, feedSvc *MockFeedService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return api.SetupRouter(&api.HandlersGroup{
		UserHandler:    handler.NewUserHandler(userSvc),
		PostHandler:    handler.NewPostHandler(postSvc),
		CommentHandler: handler.NewCommentHandler(commentSvc),
		LikeHandler:    handler.NewLikeHandler(likeSvc),
		FollowHandler:  handler.NewFollowHandler(followSvc),
		FeedHandler:    handler.NewFeedHandler(feedSvc),
		MediaHandler:   handler.NewMediaHandler(nil),
	})
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, userID gocql.UUID) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, limit int) ([]*model.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, userDTO *dto.CreateUserDTO) (*model.User, error) {
	args := m.Called(ctx, userDTO)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID gocql.UUID, userDTO *dto.CreateUserDTO) (*model.User, error) {
	args := m.Called(ctx, userID, userDTO)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) PartialUpdateUser(ctx context.Context, userID gocql.UUID, patchDTO *dto.UserPatchDTO) (*model.User, error) {
	args := m.Called(ctx, userID, patchDTO)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID gocql.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListByUser(ctx context.Context, userID gocql.UUID, limit int) ([]*model.PostByUser, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PostByUser), args.Error(1)
}

func (m *MockPostService) ListByDateBucket(ctx context.Context, dateBucket string, limit int) ([]*model.PostByDateBucket, error) {
	args := m.Called(ctx, dateBucket, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PostByDateBucket), args.Error(1)
}

func (m *MockPostService) ListByKeyword(ctx context.Context, keyword string, limit int) ([]*model.PostByKeyword, error) {
	args := m.Called(ctx, keyword, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PostByKeyword), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, postDTO *dto.CreatePostDTO) (*model.PostByUser, error) {
	args := m.Called(ctx, postDTO)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostByUser), args.Error(1)
}

func (m *MockPostService) DeleteByUser(ctx context.Context, userID, postID gocql.UUID) (*model.PostByUser, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostByUser), args.Error(1)
}

func (m *MockPostService) DeleteByDateBucket(ctx context.Context, dateBucket string, postID gocql.UUID) (*model.PostByDateBucket, error) {
	args := m.Called(ctx, dateBucket, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostByDateBucket), args.Error(1)
}

func (m *MockPostService) DeleteByKeyword(ctx context.Context, keyword string, postID gocql.UUID) (*model.PostByKeyword, error) {
	args := m.Called(ctx, keyword, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostByKeyword), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListByPost(ctx context.Context, postID gocql.UUID, limit int) ([]*model.Comment, error) {
	args := m.Called(ctx, postID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCommentService) CreateComment(ctx context.Context, commentDTO *dto.CreateCommentDTO) (*model.Comment, error) {
	args := m.Called(ctx, commentDTO)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentService) UpdateComment(ctx context.Context, postID, commentID gocql.UUID, content string) (*model.Comment, error) {
	args := m.Called(ctx, postID, commentID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) GetCount(ctx context.Context, postID gocql.UUID) (*model.LikeCount, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LikeCount), args.Error(1)
}

func (m *MockLikeService) ListByPost(ctx context.Context, postID gocql.UUID, limit int) ([]*model.LikeByPost, error) {
	args := m.Called(ctx, postID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.LikeByPost), args.Error(1)
}

func (m *MockLikeService) CreateLike(ctx context.Context, likeDTO *dto.CreateLikeDTO) (*model.LikeByPost, error) {
	args := m.Called(ctx, likeDTO)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LikeByPost), args.Error(1)
}

func (m *MockLikeService) DeleteLike(ctx context.Context, postID, userID gocql.UUID) (*model.LikeByPost, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LikeByPost), args.Error(1)
}

func (m *MockLikeService) ReconcileCounts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) ListFollowers(ctx context.Context, userID gocql.UUID, limit int) ([]*model.Follower, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Follower), args.Error(1)
}

func (m *MockFollowService) ListFollowees(ctx context.Context, userID gocql.UUID, limit int) ([]*model.Followee, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Followee), args.Error(1)
}

func (m *MockFollowService) CreateFollower(ctx context.Context, followDTO *dto.CreateFollowerDTO) (*model.Follower, error) {
	args := m.Called(ctx, followDTO)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follower), args.Error(1)
}

func (m *MockFollowService) CreateFollowee(ctx context.Context, followDTO *dto.CreateFolloweeDTO) (*model.Followee, error) {
	args := m.Called(ctx, followDTO)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Followee), args.Error(1)
}

func (m *MockFollowService) DeleteFollower(ctx context.Context, userID, followerID gocql.UUID) (*model.Follower, error) {
	args := m.Called(ctx, userID, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follower), args.Error(1)
}

func (m *MockFollowService) DeleteFollowee(ctx context.Context, userID, followeeID gocql.UUID) (*model.Followee, error) {
	args := m.Called(ctx, userID, followeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Followee), args.Error(1)
}

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) ListByUser(ctx context.Context, userID gocql.UUID, limit int) ([]*model.FeedItem, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FeedItem), args.Error(1)
}

func (m *MockFeedService) DeleteItem(ctx context.Context, userID, postID gocql.UUID) (*model.FeedItem, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FeedItem), args.Error(1)
}
