package websocket

import (
	"net/http"
	"time"

	"movie-tinder/config"
	"movie-tinder/pkg/jwt"
	"movie-tinder/pkg/logger"
	"movie-tinder/pkg/redis"
	"movie-tinder/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许跨域
	},
}

// Handler WebSocket接入处理器
// 负责连接升级、注册/注销、写协程与心跳
// 入站消息仅用于保活检测，内容无业务含义

type Handler struct {
	manager *Manager
	jwtSvc  *jwt.JWTService
	cfg     config.WebSocketConfig
}

// NewHandler 创建WebSocket处理器
func NewHandler(manager *Manager, jwtSvc *jwt.JWTService, cfg config.WebSocketConfig) *Handler {
	return &Handler{manager: manager, jwtSvc: jwtSvc, cfg: cfg}
}

// Serve Gin路由处理函数: GET /ws/:username
// token 参数可选；携带时必须有效且与路径用户名一致
func (h *Handler) Serve(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		response.BadRequest(c, "缺少用户名")
		return
	}

	if token := c.Query("token"); token != "" {
		claims, err := h.jwtSvc.ValidateToken(token)
		if err != nil || claims.Username() != username {
			response.Unauthorized(c, "token无效或与用户名不匹配")
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := NewClient(username, conn, h.cfg.SendBuffer)
	h.manager.Register(client)

	logger.Info("WebSocket连接建立",
		zap.String("username", username),
		zap.String("conn_id", client.ConnID.String()),
	)

	// 连接建立后更新Redis在线状态
	_ = redis.SetUserPresence(username, "online")

	defer func() {
		h.manager.Unregister(client)
		client.Close()
		_ = conn.Close()

		// 连接关闭后更新Redis在线状态
		_ = redis.SetUserPresence(username, "offline")

		logger.Info("WebSocket连接断开",
			zap.String("username", username),
			zap.String("conn_id", client.ConnID.String()),
		)
	}()

	// 写协程：消费Send通道 + 定时发送ping心跳
	go func() {
		ticker := time.NewTicker(h.cfg.PingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-client.Done():
				return
			case msg := <-client.Send:
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					// 写失败说明连接已断，读循环随后退出并清理
					return
				}
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(5*time.Second)); err != nil {
					return
				}
			}
		}
	}()

	// 读循环：仅用于保活/断线检测，超时未收到任何读事件则断开
	_ = conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
	conn.SetPongHandler(func(appData string) error {
		return conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
		_ = conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
	}
}
