package model

import (
	"time"
)

// Match 匹配记录
// 约定 User1ID < User2ID，与 Friendship 同样的规范化排序
// 唯一约束：每个(用户对,影片)三元组最多一条记录
// NotifiedUser1/NotifiedUser2 由显式确认接口置位，与实时推送是否成功无关

type Match struct {
	ID            uint      `gorm:"primaryKey"`
	User1ID       uint      `gorm:"not null;uniqueIndex:idx_pair_movie,priority:1;comment:编号较小的用户ID"`
	User2ID       uint      `gorm:"not null;uniqueIndex:idx_pair_movie,priority:2;index;comment:编号较大的用户ID"`
	MovieID       uint      `gorm:"not null;uniqueIndex:idx_pair_movie,priority:3;comment:影片ID"`
	NotifiedUser1 bool      `gorm:"default:false;comment:用户1是否已确认通知"`
	NotifiedUser2 bool      `gorm:"default:false;comment:用户2是否已确认通知"`
	CreatedAt     time.Time `gorm:"comment:创建时间"`
}

func (Match) TableName() string { return "match" }

// HasUser 判断用户是否属于该匹配
func (m *Match) HasUser(userID uint) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// OtherUserID 返回匹配中另一方的用户ID
func (m *Match) OtherUserID(userID uint) uint {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}
