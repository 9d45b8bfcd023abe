package repository

import (
	"errors"

	"movie-tinder/internal/model"
	"movie-tinder/pkg/errs"

	"gorm.io/gorm"
)

// MatchRepository 配对记录数据仓储
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository 创建MatchRepository实例
func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create 创建配对记录（调用方保证 User1ID < User2ID）
// 同一用户对同一影片已存在配对时返回 gorm.ErrDuplicatedKey
func (r *MatchRepository) Create(match *model.Match) error {
	return r.db.Create(match).Error
}

// GetByID 根据ID获取配对记录
func (r *MatchRepository) GetByID(id uint) (*model.Match, error) {
	var m model.Match
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("match %d", id)
		}
		return nil, err
	}
	return &m, nil
}

// Exists 规范化三元组 (user1, user2, movie) 的配对是否已存在
// 调用方保证 user1ID < user2ID
func (r *MatchRepository) Exists(user1ID, user2ID, movieID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Match{}).
		Where("user1_id = ? AND user2_id = ? AND movie_id = ?", user1ID, user2ID, movieID).
		Count(&count).Error
	return count > 0, err
}

// ListByUser 用户参与的全部配对，按创建时间倒序
func (r *MatchRepository) ListByUser(userID uint) ([]*model.Match, error) {
	var matches []*model.Match
	err := r.db.Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&matches).Error
	return matches, err
}

// MarkNotified 将配对中指定一侧标记为已通知
func (r *MatchRepository) MarkNotified(matchID uint, isUser1 bool) error {
	column := "notified_user2"
	if isUser1 {
		column = "notified_user1"
	}
	return r.db.Model(&model.Match{}).
		Where("id = ?", matchID).
		Update(column, true).Error
}
