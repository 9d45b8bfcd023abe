package model

import (
	"time"

	"gorm.io/gorm"
)

// User 用户模型
// 索引与唯一约束：用户名唯一、邀请码唯一
// 说明：无密码体系，身份由用户名标识，好友添加通过邀请码
// InviteCode 为8位大写字母+数字随机串，创建用户时生成

type User struct {
	ID         uint           `gorm:"primaryKey"`
	Username   string         `gorm:"type:varchar(64);not null;uniqueIndex;comment:用户名"`
	InviteCode string         `gorm:"type:varchar(16);not null;uniqueIndex;comment:邀请码"`
	CreatedAt  time.Time      `gorm:"comment:创建时间"`
	UpdatedAt  time.Time      `gorm:"comment:更新时间"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName 指定表名（因全局配置使用单数表名，这里与结构体名一致为 user）
func (User) TableName() string { return "user" }
