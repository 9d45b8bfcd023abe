package handler

import (
	"strconv"

	"movie-tinder/internal/service"
	"movie-tinder/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Create 创建用户
func (h *UserHandler) Create(c *gin.Context) {
	type req struct {
		Username string `json:"username" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, token, err := h.service.CreateUser(r.Username)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, &response.CreateUserResponse{
		UserInfo:    *response.FilterUserInfo(user),
		AccessToken: token,
	})
}

// Get 根据ID或用户名获取用户
// 路径段为纯数字时按ID查找，否则按用户名查找
func (h *UserHandler) Get(c *gin.Context) {
	param := c.Param("id")

	if id, err := strconv.ParseUint(param, 10, 32); err == nil {
		user, err := h.service.GetUser(uint(id))
		if err != nil {
			writeError(c, err)
			return
		}
		response.Success(c, response.FilterUserInfo(user))
		return
	}

	user, err := h.service.GetUserByUsername(param)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, response.FilterUserInfo(user))
}

// Me 获取当前用户信息
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := currentUser(c, h.service)
	if !ok {
		return
	}
	response.Success(c, response.FilterUserInfo(user))
}

// List 列出全部用户
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		writeError(c, err)
		return
	}

	infos := make([]*response.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, response.FilterUserInfo(u))
	}
	response.Success(c, infos)
}
