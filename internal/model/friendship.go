package model

import (
	"time"

	"gorm.io/gorm"
)

// FriendRequest 好友请求
// Status: pending/accepted/rejected

type FriendRequest struct {
	ID         uint           `gorm:"primaryKey"`
	SenderID   uint           `gorm:"not null;index;comment:发起方用户ID"`
	ReceiverID uint           `gorm:"not null;index;comment:接收方用户ID"`
	Status     string         `gorm:"type:varchar(32);default:'pending';comment:请求状态"`
	CreatedAt  time.Time      `gorm:"comment:创建时间"`
	UpdatedAt  time.Time      `gorm:"comment:更新时间"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (FriendRequest) TableName() string { return "friend_request" }

// Friendship 好友关系（无向对）
// 约定 User1ID < User2ID，防止镜像重复行
// 只能由已接受的 FriendRequest 创建

type Friendship struct {
	ID        uint           `gorm:"primaryKey"`
	User1ID   uint           `gorm:"not null;uniqueIndex:idx_friend_pair,priority:1;comment:编号较小的用户ID"`
	User2ID   uint           `gorm:"not null;uniqueIndex:idx_friend_pair,priority:2;comment:编号较大的用户ID"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Friendship) TableName() string { return "friendship" }

// OtherUserID 返回关系中另一方的用户ID
func (f *Friendship) OtherUserID(userID uint) uint {
	if f.User1ID == userID {
		return f.User2ID
	}
	return f.User1ID
}
