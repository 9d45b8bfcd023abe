package handler

import (
	"strconv"

	"movie-tinder/internal/service"
	"movie-tinder/pkg/response"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	friends *service.FriendService
	users   *service.UserService
}

func NewFriendHandler(friends *service.FriendService, users *service.UserService) *FriendHandler {
	return &FriendHandler{friends: friends, users: users}
}

// SendRequest 通过邀请码发送好友请求
func (h *FriendHandler) SendRequest(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}

	type req struct {
		InviteCode string `json:"invite_code" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	detail, err := h.friends.SendRequestByInviteCode(user.ID, r.InviteCode)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, response.FilterFriendRequestInfo(detail.Request, detail.Sender, detail.Receiver))
}

// ListRequests 当前用户收到的待处理好友请求
func (h *FriendHandler) ListRequests(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}

	details, err := h.friends.ListPendingRequests(user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	infos := make([]*response.FriendRequestInfo, 0, len(details))
	for _, d := range details {
		infos = append(infos, response.FilterFriendRequestInfo(d.Request, d.Sender, d.Receiver))
	}
	response.Success(c, infos)
}

// AcceptRequest 接受好友请求
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "请求ID无效")
		return
	}

	friendship, err := h.friends.AcceptRequest(uint(requestID), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	friend, err := h.users.GetUser(friendship.OtherUserID(user.ID))
	if err != nil {
		writeError(c, err)
		return
	}
	response.SuccessWithMessage(c, "好友请求已接受", response.FilterFriendshipInfo(friendship, friend))
}

// RejectRequest 拒绝好友请求
func (h *FriendHandler) RejectRequest(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "请求ID无效")
		return
	}

	if err := h.friends.RejectRequest(uint(requestID), user.ID); err != nil {
		writeError(c, err)
		return
	}
	response.SuccessWithMessage(c, "好友请求已拒绝", nil)
}

// List 当前用户的好友列表
func (h *FriendHandler) List(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}

	details, err := h.friends.ListFriends(user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	infos := make([]*response.FriendshipInfo, 0, len(details))
	for _, d := range details {
		infos = append(infos, response.FilterFriendshipInfo(d.Friendship, d.Friend))
	}
	response.Success(c, infos)
}
