package repository

import (
	"errors"

	"movie-tinder/internal/model"
	"movie-tinder/pkg/errs"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(id uint) (*model.User, error) {
	var u model.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("user %d", id)
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var u model.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("user %q", username)
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByInviteCode(code string) (*model.User, error) {
	var u model.User
	if err := r.db.Where("invite_code = ?", code).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("invite code")
		}
		return nil, err
	}
	return &u, nil
}

// ExistsByUsername 用户名是否已被占用
func (r *UserRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// ExistsByInviteCode 邀请码是否已被占用
func (r *UserRepository) ExistsByInviteCode(code string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("invite_code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) List() ([]*model.User, error) {
	var users []*model.User
	err := r.db.Order("id ASC").Find(&users).Error
	return users, err
}
