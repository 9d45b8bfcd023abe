package handler

import (
	"movie-tinder/internal/model"
	"movie-tinder/internal/service"
	"movie-tinder/pkg/errs"
	"movie-tinder/pkg/jwt"
	"movie-tinder/pkg/response"

	"github.com/gin-gonic/gin"
)

// currentUser 解析请求者身份
// 优先 current_username 查询参数（兼容旧客户端），其次JWT声明
// 解析失败时已写入响应，调用方直接return
func currentUser(c *gin.Context, users *service.UserService) (*model.User, bool) {
	username := c.Query("current_username")
	if username == "" {
		username = jwt.GetUsername(c)
	}
	if username == "" {
		response.BadRequest(c, "current_username参数缺失")
		return nil, false
	}

	user, err := users.GetUserByUsername(username)
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return user, true
}

// writeError 将业务错误映射为HTTP响应
func writeError(c *gin.Context, err error) {
	switch {
	case errs.IsNotFound(err):
		response.NotFound(c, err.Error())
	case errs.IsConflict(err):
		response.Conflict(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
