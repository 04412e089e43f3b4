package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"osohub/internal/api/dto"
	"osohub/internal/pkg/response"
	"osohub/internal/service"
)

type FollowHandler struct {
	followSvc service.FollowService
}

func NewFollowHandler(followSvc service.FollowService) *FollowHandler {
	return &FollowHandler{
		followSvc: followSvc,
	}
}

func (s *FollowHandler) ListFollowers(c *gin.Context) {
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

	followers, err := s.followSvc.ListFollowers(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followers)
}

func (s *FollowHandler) ListFollowees(c *gin.Context) {
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

	followees, err := s.followSvc.ListFollowees(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followees)
}

func (s *FollowHandler) CreateFollower(c *gin.Context) {
	var req dto.CreateFollowerDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	follower, err := s.followSvc.CreateFollower(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, follower)
}

func (s *FollowHandler) CreateFollowee(c *gin.Context) {
	var req dto.CreateFolloweeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	followee, err := s.followSvc.CreateFollowee(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followee)
}

// DeleteFollower 查询串寻址：DELETE /followers?user_id=&follower_id=
func (s *FollowHandler) DeleteFollower(c *gin.Context) {
	userID, err := uuidQuery(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	followerID, err := uuidQuery(c, "follower_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	s.deleteFollower(c, userID, followerID)
}

// DeleteFollowerByPath 路径寻址的别名：DELETE /followers/:user_id/:follower_id
func (s *FollowHandler) DeleteFollowerByPath(c *gin.Context) {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	followerID, err := uuidParam(c, "follower_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	s.deleteFollower(c, userID, followerID)
}

func (s *FollowHandler) deleteFollower(c *gin.Context, userID, followerID gocql.UUID) {
	follower, err := s.followSvc.DeleteFollower(c.Request.Context(), userID, followerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, follower)
}

// DeleteFollowee 查询串寻址：DELETE /followees?user_id=&followee_id=
func (s *FollowHandler) DeleteFollowee(c *gin.Context) {
	userID, err := uuidQuery(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	followeeID, err := uuidQuery(c, "followee_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	s.deleteFollowee(c, userID, followeeID)
}

// DeleteFolloweeByPath 路径寻址的别名：DELETE /followees/:user_id/:followee_id
func (s *FollowHandler) DeleteFolloweeByPath(c *gin.Context) {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	followeeID, err := uuidParam(c, "followee_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	s.deleteFollowee(c, userID, followeeID)
}

func (s *FollowHandler) deleteFollowee(c *gin.Context, userID, followeeID gocql.UUID) {
	followee, err := s.followSvc.DeleteFollowee(c.Request.Context(), userID, followeeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followee)
}
