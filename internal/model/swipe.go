package model

import (
	"time"
)

// 滑动方向
const (
	SwipeLeft  = "left"
	SwipeRight = "right"
)

// Swipe 滑动记录
// 唯一约束：每个(用户,影片)对最多一条记录，创建后不可变
// 业务层先做存在性检查，唯一索引兜底并发竞争

type Swipe struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_movie,priority:1;comment:用户ID"`
	MovieID   uint      `gorm:"not null;uniqueIndex:idx_user_movie,priority:2;index;comment:影片ID"`
	Direction string    `gorm:"type:varchar(8);not null;comment:滑动方向(left/right)"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

func (Swipe) TableName() string { return "swipe" }
