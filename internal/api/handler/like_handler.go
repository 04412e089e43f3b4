package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"osohub/internal/api/dto"
	"osohub/internal/pkg/response"
	"osohub/internal/service"
)

type LikeHandler struct {
	likeSvc service.LikeService
}

func NewLikeHandler(likeSvc service.LikeService) *LikeHandler {
	return &LikeHandler{
		likeSvc: likeSvc,
	}
}

func (s *LikeHandler) GetCount(c *gin.Context) {
	postID, err := uuidParam(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	count, err := s.likeSvc.GetCount(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, count)
}

func (s *LikeHandler) ListByPost(c *gin.Context) {
	postID, err := uuidParam(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	limit, err := limitQuery(c, 10)
	if err != nil {
		response.Error(c, err)
		return
	}

	likes, err := s.likeSvc.ListByPost(c.Request.Context(), postID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, likes)
}

func (s *LikeHandler) CreateLike(c *gin.Context) {
	var req dto.CreateLikeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	like, err := s.likeSvc.CreateLike(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, like)
}

// DeleteLike 查询串寻址：DELETE /likes?post_id=&user_id=
func (s *LikeHandler) DeleteLike(c *gin.Context) {
	postID, err := uuidQuery(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	userID, err := uuidQuery(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	s.deleteLike(c, postID, userID)
}

// DeleteLikeByPath 路径寻址的别名：DELETE /likes/:post_id/:user_id
func (s *LikeHandler) DeleteLikeByPath(c *gin.Context) {
	postID, err := uuidParam(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	s.deleteLike(c, postID, userID)
}

func (s *LikeHandler) deleteLike(c *gin.Context, postID, userID gocql.UUID) {
	like, err := s.likeSvc.DeleteLike(c.Request.Context(), postID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, like)
}
