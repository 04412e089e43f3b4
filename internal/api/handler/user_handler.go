package handler

import (
	"github.com/gin-gonic/gin"

	"osohub/internal/api/dto"
	"osohub/internal/pkg/response"
	"osohub/internal/service"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) ListUsers(c *gin.Context) {
	limit, err := limitQuery(c, 10)
	if err != nil {
		response.Error(c, err)
		return
	}

	users, err := s.userSvc.ListUsers(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

func (s *UserHandler) GetUser(c *gin.Context) {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.CreateUser(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.UpdateUser(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) PartialUpdateUser(c *gin.Context) {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UserPatchDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.PartialUpdateUser(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.userSvc.DeleteUser(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
