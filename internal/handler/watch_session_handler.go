package handler

import (
	"movie-tinder/internal/service"
	"movie-tinder/pkg/response"

	"github.com/gin-gonic/gin"
)

type WatchSessionHandler struct {
	sessions *service.WatchSessionService
	users    *service.UserService
}

func NewWatchSessionHandler(sessions *service.WatchSessionService, users *service.UserService) *WatchSessionHandler {
	return &WatchSessionHandler{sessions: sessions, users: users}
}

// Create 与好友创建观影会话
func (h *WatchSessionHandler) Create(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}

	type req struct {
		FriendID uint `json:"friend_id" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	detail, err := h.sessions.CreateSession(user.ID, r.FriendID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, response.FilterWatchSessionInfo(detail.Session, detail.Friend))
}

// List 当前用户参与的观影会话
func (h *WatchSessionHandler) List(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}

	details, err := h.sessions.ListSessions(user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	infos := make([]*response.WatchSessionInfo, 0, len(details))
	for _, d := range details {
		infos = append(infos, response.FilterWatchSessionInfo(d.Session, d.Friend))
	}
	response.Success(c, infos)
}
