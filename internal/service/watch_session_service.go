package service

import (
	"movie-tinder/internal/model"
	"movie-tinder/internal/repository"
	"movie-tinder/pkg/errs"
)

// WatchSessionDetail 观影会话及对方用户
type WatchSessionDetail struct {
	Session *model.WatchSession
	Friend  *model.User
}

// WatchSessionService 共同观影会话业务逻辑
type WatchSessionService struct {
	sessions *repository.WatchSessionRepository
	users    *repository.UserRepository
	friends  *repository.FriendRepository
}

// NewWatchSessionService 创建WatchSessionService实例
func NewWatchSessionService(
	sessions *repository.WatchSessionRepository,
	users *repository.UserRepository,
	friends *repository.FriendRepository,
) *WatchSessionService {
	return &WatchSessionService{sessions: sessions, users: users, friends: friends}
}

// CreateSession 与好友创建观影会话
func (s *WatchSessionService) CreateSession(userID, friendID uint) (*WatchSessionDetail, error) {
	if userID == friendID {
		return nil, errs.Conflict("cannot start a watch session with yourself")
	}

	if _, err := s.users.GetByID(userID); err != nil {
		return nil, err
	}
	friend, err := s.users.GetByID(friendID)
	if err != nil {
		return nil, err
	}

	areFriends, err := s.friends.AreFriends(userID, friendID)
	if err != nil {
		return nil, err
	}
	if !areFriends {
		return nil, errs.Conflict("watch sessions can only be started with friends")
	}

	user1, user2 := canonicalPair(userID, friendID)
	session := &model.WatchSession{User1ID: user1, User2ID: user2}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}
	return &WatchSessionDetail{Session: session, Friend: friend}, nil
}

// ListSessions 用户参与的观影会话
func (s *WatchSessionService) ListSessions(userID uint) ([]*WatchSessionDetail, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, err
	}

	sessions, err := s.sessions.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	details := make([]*WatchSessionDetail, 0, len(sessions))
	for _, ws := range sessions {
		otherID := ws.User1ID
		if otherID == userID {
			otherID = ws.User2ID
		}
		friend, err := s.users.GetByID(otherID)
		if err != nil {
			return nil, err
		}
		details = append(details, &WatchSessionDetail{Session: ws, Friend: friend})
	}
	return details, nil
}
