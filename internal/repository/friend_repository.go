package repository

import (
	"errors"

	"movie-tinder/internal/model"
	"movie-tinder/pkg/errs"

	"gorm.io/gorm"
)

// FriendRepository 好友请求与好友关系数据仓储
type FriendRepository struct {
	db *gorm.DB
}

// NewFriendRepository 创建FriendRepository实例
func NewFriendRepository(db *gorm.DB) *FriendRepository {
	return &FriendRepository{db: db}
}

// CreateRequest 创建好友请求
func (r *FriendRepository) CreateRequest(req *model.FriendRequest) error {
	return r.db.Create(req).Error
}

// GetRequestByID 根据ID获取好友请求
func (r *FriendRepository) GetRequestByID(id uint) (*model.FriendRequest, error) {
	var req model.FriendRequest
	if err := r.db.First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("friend request %d", id)
		}
		return nil, err
	}
	return &req, nil
}

// FindRequestBetween 查找两个用户之间的好友请求（双向）
// 不存在时返回 (nil, nil)
func (r *FriendRepository) FindRequestBetween(user1ID, user2ID uint) (*model.FriendRequest, error) {
	var req model.FriendRequest
	err := r.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		user1ID, user2ID, user2ID, user1ID,
	).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListPendingRequests 获取用户收到的待处理好友请求
func (r *FriendRepository) ListPendingRequests(receiverID uint) ([]*model.FriendRequest, error) {
	var requests []*model.FriendRequest
	err := r.db.Where("receiver_id = ? AND status = ?", receiverID, "pending").
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

// UpdateRequestStatus 更新好友请求状态
func (r *FriendRepository) UpdateRequestStatus(id uint, status string) error {
	return r.db.Model(&model.FriendRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CreateFriendship 创建好友关系（调用方保证 User1ID < User2ID）
func (r *FriendRepository) CreateFriendship(f *model.Friendship) error {
	return r.db.Create(f).Error
}

// AreFriends 判断两个用户是否为好友
func (r *FriendRepository) AreFriends(user1ID, user2ID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Friendship{}).Where(
		"(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)",
		user1ID, user2ID, user2ID, user1ID,
	).Count(&count).Error
	return count > 0, err
}

// ListFriendships 获取用户的全部好友关系
func (r *FriendRepository) ListFriendships(userID uint) ([]*model.Friendship, error) {
	var friendships []*model.Friendship
	err := r.db.Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&friendships).Error
	return friendships, err
}

// ListFriendIDs 获取用户全部好友的用户ID
func (r *FriendRepository) ListFriendIDs(userID uint) ([]uint, error) {
	friendships, err := r.ListFriendships(userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(friendships))
	for _, f := range friendships {
		ids = append(ids, f.OtherUserID(userID))
	}
	return ids, nil
}
