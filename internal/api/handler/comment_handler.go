package handler

import (
	"github.com/gin-gonic/gin"

	"osohub/internal/api/dto"
	"osohub/internal/pkg/response"
	"osohub/internal/service"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

func (s *CommentHandler) ListByPost(c *gin.Context) {
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

	comments, err := s.commentSvc.ListByPost(c.Request.Context(), postID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) UpdateComment(c *gin.Context) {
	postID, err := uuidParam(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	commentID, err := uuidParam(c, "comment_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.UpdateComment(c.Request.Context(), postID, commentID, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}
