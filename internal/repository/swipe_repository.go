package repository

import (
	"errors"

	"movie-tinder/internal/model"

	"gorm.io/gorm"
)

// SwipeRepository 滑动记录数据仓储
type SwipeRepository struct {
	db *gorm.DB
}

// NewSwipeRepository 创建SwipeRepository实例
func NewSwipeRepository(db *gorm.DB) *SwipeRepository {
	return &SwipeRepository{db: db}
}

// Create 创建滑动记录
// 同一用户对同一影片重复滑动时返回 gorm.ErrDuplicatedKey
func (r *SwipeRepository) Create(swipe *model.Swipe) error {
	return r.db.Create(swipe).Error
}

// Exists 用户是否已滑过该影片
func (r *SwipeRepository) Exists(userID, movieID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Swipe{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	return count > 0, err
}

// HasRightSwipe 用户是否右滑过该影片
func (r *SwipeRepository) HasRightSwipe(userID, movieID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Swipe{}).
		Where("user_id = ? AND movie_id = ? AND direction = ?", userID, movieID, model.SwipeRight).
		Count(&count).Error
	return count > 0, err
}

// ListRightSwipersAmong 给定用户集合中右滑过该影片的用户ID
func (r *SwipeRepository) ListRightSwipersAmong(userIDs []uint, movieID uint) ([]uint, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.Model(&model.Swipe{}).
		Where("user_id IN ? AND movie_id = ? AND direction = ?", userIDs, movieID, model.SwipeRight).
		Order("user_id ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}

// ListByUser 用户的全部滑动记录
func (r *SwipeRepository) ListByUser(userID uint) ([]*model.Swipe, error) {
	var swipes []*model.Swipe
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&swipes).Error
	return swipes, err
}

// GetByUserAndMovie 获取用户对某影片的滑动记录，不存在时返回 (nil, nil)
func (r *SwipeRepository) GetByUserAndMovie(userID, movieID uint) (*model.Swipe, error) {
	var s model.Swipe
	err := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
