package websocket

import (
	"encoding/json"

	"movie-tinder/pkg/logger"

	"go.uber.org/zap"
)

// MatchEvent 匹配推送事件
// 线上客户端依赖该结构，字段名不可更改

type MatchEvent struct {
	Type           string `json:"type"`
	MatchID        uint   `json:"match_id"`
	MovieTitle     string `json:"movie_title"`
	FriendUsername string `json:"friend_username"`
}

// EventNewMatch 新匹配事件类型
const EventNewMatch = "new_match"

// MatchNotifier 匹配通知分发器
// 尽力而为、至多一次：双方各自独立推送，对方不在线不算错误
// 调用方在匹配事务提交后异步调用，推送结果不回传

type MatchNotifier struct {
	manager *Manager
}

// NewMatchNotifier 创建分发器
func NewMatchNotifier(manager *Manager) *MatchNotifier {
	return &MatchNotifier{manager: manager}
}

// NotifyNewMatch 推送新匹配给双方
// 每一方收到的 friend_username 都是对方的用户名
// 两次推送相互独立，无顺序保证
func (n *MatchNotifier) NotifyNewMatch(user1, user2 string, matchID uint, movieTitle string) {
	n.sendTo(user1, matchID, movieTitle, user2)
	n.sendTo(user2, matchID, movieTitle, user1)
}

func (n *MatchNotifier) sendTo(username string, matchID uint, movieTitle, friendUsername string) {
	payload, err := json.Marshal(MatchEvent{
		Type:           EventNewMatch,
		MatchID:        matchID,
		MovieTitle:     movieTitle,
		FriendUsername: friendUsername,
	})
	if err != nil {
		return
	}

	if !n.manager.Send(username, payload) {
		logger.Debug("匹配推送未送达（用户不在线）",
			zap.String("username", username),
			zap.Uint("match_id", matchID),
		)
	}
}
