package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"osohub/internal/model"
	"osohub/internal/service"
)

func TestFeedServiceDeleteItemRecoversClusteringKey(t *testing.T) {
	userID := gocql.TimeUUID()
	postID := gocql.TimeUUID()
	postCreatedAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	existing := &model.FeedItem{UserID: userID, PostCreatedAt: postCreatedAt, PostID: postID, Title: "hello"}

	repo := new(MockFeedRepo)
	repo.On("GetItem", mock.Anything, userID, postID).Return(existing, nil)
	repo.On("DeleteItem", mock.Anything, userID, postCreatedAt, postID).Return(nil)

	svc := service.NewFeedService(repo)
	item, err := svc.DeleteItem(context.Background(), userID, postID)

	assert.NoError(t, err)
	assert.Equal(t, existing, item)
	repo.AssertExpectations(t)
}

func TestFeedServiceDeleteItemNotFound(t *testing.T) {
	userID := gocql.TimeUUID()
	postID := gocql.TimeUUID()

	repo := new(MockFeedRepo)
	repo.On("GetItem", mock.Anything, userID, postID).Return(nil, nil)

	svc := service.NewFeedService(repo)
	_, err := svc.DeleteItem(context.Background(), userID, postID)

	assert.ErrorIs(t, err, service.ErrFeedItemNotFound)
	repo.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
