package service

import (
	"errors"

	"movie-tinder/internal/model"
	"movie-tinder/internal/repository"
	"movie-tinder/pkg/errs"
	"movie-tinder/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FriendRequestDetail 好友请求及双方用户信息
type FriendRequestDetail struct {
	Request  *model.FriendRequest
	Sender   *model.User
	Receiver *model.User
}

// FriendshipDetail 好友关系及对方用户信息
type FriendshipDetail struct {
	Friendship *model.Friendship
	Friend     *model.User
}

// FriendService 好友请求与好友关系业务逻辑
type FriendService struct {
	users   *repository.UserRepository
	friends *repository.FriendRepository
}

// NewFriendService 创建FriendService实例
func NewFriendService(users *repository.UserRepository, friends *repository.FriendRepository) *FriendService {
	return &FriendService{users: users, friends: friends}
}

// SendRequestByInviteCode 通过邀请码发送好友请求
func (s *FriendService) SendRequestByInviteCode(senderID uint, inviteCode string) (*FriendRequestDetail, error) {
	sender, err := s.users.GetByID(senderID)
	if err != nil {
		return nil, err
	}

	receiver, err := s.users.GetByInviteCode(inviteCode)
	if err != nil {
		return nil, err
	}

	if sender.ID == receiver.ID {
		return nil, errs.Conflict("cannot send a friend request to yourself")
	}

	already, err := s.friends.AreFriends(sender.ID, receiver.ID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, errs.Conflict("users are already friends")
	}

	existing, err := s.friends.FindRequestBetween(sender.ID, receiver.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == "pending" {
		return nil, errs.Conflict("a friend request is already pending")
	}

	req := &model.FriendRequest{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Status:     "pending",
	}
	if err := s.friends.CreateRequest(req); err != nil {
		return nil, err
	}

	logger.Info("好友请求已发送",
		zap.Uint("sender_id", sender.ID),
		zap.Uint("receiver_id", receiver.ID),
	)
	return &FriendRequestDetail{Request: req, Sender: sender, Receiver: receiver}, nil
}

// AcceptRequest 接受好友请求并建立好友关系
// 仅接收方可操作，已处理过的请求拒绝重复处理
func (s *FriendService) AcceptRequest(requestID, userID uint) (*model.Friendship, error) {
	req, err := s.friends.GetRequestByID(requestID)
	if err != nil {
		return nil, err
	}
	if req.ReceiverID != userID {
		return nil, errs.Conflict("only the receiver can accept this request")
	}
	if req.Status != "pending" {
		return nil, errs.Conflict("friend request already handled")
	}

	if err := s.friends.UpdateRequestStatus(req.ID, "accepted"); err != nil {
		return nil, err
	}

	user1, user2 := canonicalPair(req.SenderID, req.ReceiverID)
	friendship := &model.Friendship{User1ID: user1, User2ID: user2}
	if err := s.friends.CreateFriendship(friendship); err != nil {
		// 并发接受时好友关系可能已建立
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}

	logger.Info("好友关系已建立",
		zap.Uint("user1_id", user1),
		zap.Uint("user2_id", user2),
	)
	return friendship, nil
}

// RejectRequest 拒绝好友请求
func (s *FriendService) RejectRequest(requestID, userID uint) error {
	req, err := s.friends.GetRequestByID(requestID)
	if err != nil {
		return err
	}
	if req.ReceiverID != userID {
		return errs.Conflict("only the receiver can reject this request")
	}
	if req.Status != "pending" {
		return errs.Conflict("friend request already handled")
	}
	return s.friends.UpdateRequestStatus(req.ID, "rejected")
}

// ListPendingRequests 用户收到的待处理好友请求
func (s *FriendService) ListPendingRequests(userID uint) ([]*FriendRequestDetail, error) {
	requests, err := s.friends.ListPendingRequests(userID)
	if err != nil {
		return nil, err
	}

	details := make([]*FriendRequestDetail, 0, len(requests))
	for _, req := range requests {
		sender, err := s.users.GetByID(req.SenderID)
		if err != nil {
			return nil, err
		}
		receiver, err := s.users.GetByID(req.ReceiverID)
		if err != nil {
			return nil, err
		}
		details = append(details, &FriendRequestDetail{Request: req, Sender: sender, Receiver: receiver})
	}
	return details, nil
}

// ListFriends 用户的好友列表
func (s *FriendService) ListFriends(userID uint) ([]*FriendshipDetail, error) {
	friendships, err := s.friends.ListFriendships(userID)
	if err != nil {
		return nil, err
	}

	details := make([]*FriendshipDetail, 0, len(friendships))
	for _, f := range friendships {
		friend, err := s.users.GetByID(f.OtherUserID(userID))
		if err != nil {
			return nil, err
		}
		details = append(details, &FriendshipDetail{Friendship: f, Friend: friend})
	}
	return details, nil
}

// canonicalPair 返回规范顺序的用户对（小ID在前）
func canonicalPair(a, b uint) (uint, uint) {
	if a < b {
		return a, b
	}
	return b, a
}
