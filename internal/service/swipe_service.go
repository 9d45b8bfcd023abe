package service

import (
	"errors"

	"movie-tinder/internal/model"
	"movie-tinder/internal/repository"
	dbpkg "movie-tinder/pkg/db"
	"movie-tinder/pkg/errs"
	"movie-tinder/pkg/logger"
	"movie-tinder/pkg/websocket"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SwipeService 滑动与匹配检测业务逻辑
// 右滑落库后同步扫描好友的右滑记录，对每个命中的好友建一条匹配
// 匹配以规范化三元组 (小ID, 大ID, 影片ID) 去重，检测可安全重入
// 推送在匹配落库后异步进行，失败不影响本次请求
type SwipeService struct {
	db       *gorm.DB
	users    *repository.UserRepository
	movies   *repository.MovieRepository
	swipes   *repository.SwipeRepository
	friends  *repository.FriendRepository
	matches  *repository.MatchRepository
	notifier *websocket.MatchNotifier
}

// NewSwipeService 创建SwipeService实例
func NewSwipeService(
	db *gorm.DB,
	users *repository.UserRepository,
	movies *repository.MovieRepository,
	swipes *repository.SwipeRepository,
	friends *repository.FriendRepository,
	matches *repository.MatchRepository,
	notifier *websocket.MatchNotifier,
) *SwipeService {
	return &SwipeService{
		db:       db,
		users:    users,
		movies:   movies,
		swipes:   swipes,
		friends:  friends,
		matches:  matches,
		notifier: notifier,
	}
}

// CreateSwipe 记录一次滑动
// 右滑时返回本次新建的全部匹配（可能多条，也可能为空）
func (s *SwipeService) CreateSwipe(userID, movieID uint, direction string) (*model.Swipe, []*model.Match, error) {
	if direction != model.SwipeLeft && direction != model.SwipeRight {
		return nil, nil, errors.New("direction must be left or right")
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, nil, err
	}
	movie, err := s.movies.GetByID(movieID)
	if err != nil {
		return nil, nil, err
	}

	swipe := &model.Swipe{UserID: user.ID, MovieID: movie.ID, Direction: direction}
	if err := s.swipes.Create(swipe); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, errs.Conflict("user %d already swiped movie %d", userID, movieID)
		}
		return nil, nil, err
	}

	if direction != model.SwipeRight {
		return swipe, nil, nil
	}

	created, err := s.detectMatches(user.ID, movie.ID)
	if err != nil {
		return nil, nil, err
	}

	for _, match := range created {
		s.notifyMatch(match, user, movie)
	}
	return swipe, created, nil
}

// ListSwipes 用户的滑动历史
func (s *SwipeService) ListSwipes(userID uint) ([]*model.Swipe, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, err
	}
	return s.swipes.ListByUser(userID)
}

// detectMatches 扫描全部好友，为每个同样右滑过该影片的好友建匹配
// 已存在的匹配跳过，一次右滑可同时命中多个好友
func (s *SwipeService) detectMatches(userID, movieID uint) ([]*model.Match, error) {
	friendIDs, err := s.friends.ListFriendIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(friendIDs) == 0 {
		return nil, nil
	}

	swipers, err := s.swipes.ListRightSwipersAmong(friendIDs, movieID)
	if err != nil {
		return nil, err
	}

	var created []*model.Match
	for _, friendID := range swipers {
		user1, user2 := canonicalPair(userID, friendID)

		exists, err := s.matches.Exists(user1, user2, movieID)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		match := &model.Match{User1ID: user1, User2ID: user2, MovieID: movieID}
		err = dbpkg.WithRetry(s.db, func(tx *gorm.DB) error {
			return repository.NewMatchRepository(tx).Create(match)
		})
		if err != nil {
			// 对向滑动并发命中时唯一索引兜底，按已存在处理
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return nil, err
		}

		logger.Info("新匹配",
			zap.Uint("match_id", match.ID),
			zap.Uint("user1_id", user1),
			zap.Uint("user2_id", user2),
			zap.Uint("movie_id", movieID),
		)
		created = append(created, match)
	}
	return created, nil
}

// notifyMatch 异步推送匹配通知给双方，任何失败只记录日志
func (s *SwipeService) notifyMatch(match *model.Match, swiper *model.User, movie *model.Movie) {
	friend, err := s.users.GetByID(match.OtherUserID(swiper.ID))
	if err != nil {
		logger.Warn("匹配推送取消：对方用户查询失败",
			zap.Uint("match_id", match.ID),
			zap.Error(err),
		)
		return
	}

	go s.notifier.NotifyNewMatch(swiper.Username, friend.Username, match.ID, movie.Title)
}
