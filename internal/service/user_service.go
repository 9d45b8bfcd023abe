package service

import (
	"crypto/rand"
	"errors"
	"strconv"
	"strings"

	"movie-tinder/internal/model"
	"movie-tinder/internal/repository"
	"movie-tinder/pkg/errs"
	"movie-tinder/pkg/jwt"
	"movie-tinder/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 邀请码字符集：大写字母加数字，8位
const (
	inviteCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	inviteCodeLength  = 8
	inviteCodeRetries = 10
)

// UserService 用户业务逻辑
type UserService struct {
	users  *repository.UserRepository
	jwtSvc *jwt.JWTService
}

// NewUserService 创建UserService实例
func NewUserService(users *repository.UserRepository, jwtSvc *jwt.JWTService) *UserService {
	return &UserService{users: users, jwtSvc: jwtSvc}
}

// CreateUser 创建用户并分配唯一邀请码
// 返回用户与可选的访问令牌（令牌签发失败不影响创建）
func (s *UserService) CreateUser(username string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, "", errors.New("username is required")
	}

	taken, err := s.users.ExistsByUsername(username)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", errs.Conflict("username %q already taken", username)
	}

	code, err := s.uniqueInviteCode()
	if err != nil {
		return nil, "", err
	}

	user := &model.User{Username: username, InviteCode: code}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", errs.Conflict("username %q already taken", username)
		}
		return nil, "", err
	}

	token, err := s.jwtSvc.GenerateToken(
		strconv.FormatUint(uint64(user.ID), 10),
		map[string]interface{}{"username": user.Username},
	)
	if err != nil {
		logger.Warn("签发访问令牌失败", zap.Uint("user_id", user.ID), zap.Error(err))
		token = ""
	}

	logger.Info("用户创建成功",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
	)
	return user, token, nil
}

// GetUser 根据ID获取用户
func (s *UserService) GetUser(id uint) (*model.User, error) {
	return s.users.GetByID(id)
}

// GetUserByUsername 根据用户名获取用户
func (s *UserService) GetUserByUsername(username string) (*model.User, error) {
	return s.users.GetByUsername(username)
}

// ListUsers 列出全部用户
func (s *UserService) ListUsers() ([]*model.User, error) {
	return s.users.List()
}

// uniqueInviteCode 生成未被占用的邀请码，多次碰撞视为异常
func (s *UserService) uniqueInviteCode() (string, error) {
	for i := 0; i < inviteCodeRetries; i++ {
		code, err := randomInviteCode()
		if err != nil {
			return "", err
		}
		taken, err := s.users.ExistsByInviteCode(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", errors.New("failed to generate unique invite code")
}

func randomInviteCode() (string, error) {
	buf := make([]byte, inviteCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = inviteCodeCharset[int(b)%len(inviteCodeCharset)]
	}
	return string(buf), nil
}
