package handler

import (
	"github.com/gin-gonic/gin"

	"osohub/internal/pkg/response"
	"osohub/internal/service"
)

type FeedHandler struct {
	feedSvc service.FeedService
}

func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedSvc: feedSvc,
	}
}

func (s *FeedHandler) ListByUser(c *gin.Context) {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	limit, err := limitQuery(c, 20)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := s.feedSvc.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

func (s *FeedHandler) DeleteItem(c *gin.Context) {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	postID, err := uuidParam(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := s.feedSvc.DeleteItem(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}
