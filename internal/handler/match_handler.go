package handler

import (
	"strconv"

	"movie-tinder/internal/service"
	"movie-tinder/pkg/response"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matches *service.MatchService
	users   *service.UserService
}

func NewMatchHandler(matches *service.MatchService, users *service.UserService) *MatchHandler {
	return &MatchHandler{matches: matches, users: users}
}

// List 当前用户的匹配列表
func (h *MatchHandler) List(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}

	details, err := h.matches.ListMatches(user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	infos := make([]*response.MatchInfo, 0, len(details))
	for _, d := range details {
		movie := response.FilterMovieInfo(d.Movie.Movie, d.Movie.Services)
		infos = append(infos, response.FilterMatchInfo(d.Match, movie, d.Friend))
	}
	response.Success(c, infos)
}

// AcknowledgeNotification 标记当前用户已收到该匹配的通知
func (h *MatchHandler) AcknowledgeNotification(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}

	matchID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "匹配ID无效")
		return
	}

	detail, err := h.matches.AcknowledgeNotification(uint(matchID), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	movie := response.FilterMovieInfo(detail.Movie.Movie, detail.Movie.Services)
	response.Success(c, response.FilterMatchInfo(detail.Match, movie, detail.Friend))
}
