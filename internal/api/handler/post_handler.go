package handler

import (
	"github.com/gin-gonic/gin"

	"osohub/internal/api/dto"
	"osohub/internal/pkg/response"
	"osohub/internal/service"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) ListByUser(c *gin.Context) {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	limit, err := limitQuery(c, 10)
	if err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postSvc.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) ListByDateBucket(c *gin.Context) {
	limit, err := limitQuery(c, 10)
	if err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postSvc.ListByDateBucket(c.Request.Context(), c.Param("date_bucket"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) ListByKeyword(c *gin.Context) {
	limit, err := limitQuery(c, 10)
	if err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postSvc.ListByKeyword(c.Request.Context(), c.Param("keyword"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeleteByUser(c *gin.Context) {
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

	post, err := s.postSvc.DeleteByUser(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeleteByDateBucket(c *gin.Context) {
	postID, err := uuidParam(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.DeleteByDateBucket(c.Request.Context(), c.Param("date_bucket"), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeleteByKeyword(c *gin.Context) {
	postID, err := uuidParam(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.DeleteByKeyword(c.Request.Context(), c.Param("keyword"), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}
