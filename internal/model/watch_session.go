package model

import (
	"time"
)

// WatchSession 共同观影会话
// 约定 User1ID < User2ID，仅限好友之间创建

type WatchSession struct {
	ID        uint      `gorm:"primaryKey"`
	User1ID   uint      `gorm:"not null;index;comment:编号较小的用户ID"`
	User2ID   uint      `gorm:"not null;index;comment:编号较大的用户ID"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

func (WatchSession) TableName() string { return "watch_session" }
