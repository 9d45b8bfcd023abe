package handler

import (
	"movie-tinder/internal/service"
	"movie-tinder/pkg/response"

	"github.com/gin-gonic/gin"
)

type SwipeHandler struct {
	swipes *service.SwipeService
	users  *service.UserService
}

func NewSwipeHandler(swipes *service.SwipeService, users *service.UserService) *SwipeHandler {
	return &SwipeHandler{swipes: swipes, users: users}
}

// Create 记录一次滑动
// 右滑命中好友时匹配在服务端建立并通过WebSocket推送，响应只含滑动本身
func (h *SwipeHandler) Create(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}

	type req struct {
		MovieID   uint   `json:"movie_id" binding:"required"`
		Direction string `json:"direction" binding:"required,oneof=left right"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	swipe, _, err := h.swipes.CreateSwipe(user.ID, r.MovieID, r.Direction)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, response.FilterSwipeInfo(swipe))
}

// List 当前用户的滑动历史
func (h *SwipeHandler) List(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}

	swipes, err := h.swipes.ListSwipes(user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	infos := make([]*response.SwipeInfo, 0, len(swipes))
	for _, s := range swipes {
		infos = append(infos, response.FilterSwipeInfo(s))
	}
	response.Success(c, infos)
}
