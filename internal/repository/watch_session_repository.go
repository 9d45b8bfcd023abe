package repository

import (
	"errors"

	"movie-tinder/internal/model"
	"movie-tinder/pkg/errs"

	"gorm.io/gorm"
)

// WatchSessionRepository 共同观影会话数据仓储
type WatchSessionRepository struct {
	db *gorm.DB
}

// NewWatchSessionRepository 创建WatchSessionRepository实例
func NewWatchSessionRepository(db *gorm.DB) *WatchSessionRepository {
	return &WatchSessionRepository{db: db}
}

// Create 创建观影会话
func (r *WatchSessionRepository) Create(session *model.WatchSession) error {
	return r.db.Create(session).Error
}

// GetByID 根据ID获取观影会话
func (r *WatchSessionRepository) GetByID(id uint) (*model.WatchSession, error) {
	var s model.WatchSession
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("watch session %d", id)
		}
		return nil, err
	}
	return &s, nil
}

// ListByUser 用户参与的全部观影会话，按创建时间倒序
func (r *WatchSessionRepository) ListByUser(userID uint) ([]*model.WatchSession, error) {
	var sessions []*model.WatchSession
	err := r.db.Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&sessions).Error
	return sessions, err
}
