package service

import (
	"movie-tinder/internal/model"
	"movie-tinder/internal/repository"
	"movie-tinder/pkg/errs"
)

// MatchDetail 匹配及其展开的影片与对方用户
type MatchDetail struct {
	Match  *model.Match
	Movie  *MovieDetail
	Friend *model.User
}

// MatchService 匹配查询业务逻辑
type MatchService struct {
	matches *repository.MatchRepository
	users   *repository.UserRepository
	movies  *repository.MovieRepository
}

// NewMatchService 创建MatchService实例
func NewMatchService(
	matches *repository.MatchRepository,
	users *repository.UserRepository,
	movies *repository.MovieRepository,
) *MatchService {
	return &MatchService{matches: matches, users: users, movies: movies}
}

// ListMatches 用户参与的全部匹配，按创建时间倒序
func (s *MatchService) ListMatches(userID uint) ([]*MatchDetail, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, err
	}

	matches, err := s.matches.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	details := make([]*MatchDetail, 0, len(matches))
	for _, m := range matches {
		movie, err := s.movies.GetByID(m.MovieID)
		if err != nil {
			return nil, err
		}
		services, err := s.movies.GetServicesForMovie(movie.ID)
		if err != nil {
			return nil, err
		}
		friend, err := s.users.GetByID(m.OtherUserID(userID))
		if err != nil {
			return nil, err
		}
		details = append(details, &MatchDetail{
			Match:  m,
			Movie:  &MovieDetail{Movie: movie, Services: services},
			Friend: friend,
		})
	}
	return details, nil
}

// AcknowledgeNotification 将匹配中当前用户一侧标记为已通知
func (s *MatchService) AcknowledgeNotification(matchID, userID uint) (*MatchDetail, error) {
	match, err := s.matches.GetByID(matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasUser(userID) {
		return nil, errs.Conflict("user %d is not part of match %d", userID, matchID)
	}

	if err := s.matches.MarkNotified(match.ID, userID == match.User1ID); err != nil {
		return nil, err
	}

	match, err = s.matches.GetByID(matchID)
	if err != nil {
		return nil, err
	}
	movie, err := s.movies.GetByID(match.MovieID)
	if err != nil {
		return nil, err
	}
	services, err := s.movies.GetServicesForMovie(movie.ID)
	if err != nil {
		return nil, err
	}
	friend, err := s.users.GetByID(match.OtherUserID(userID))
	if err != nil {
		return nil, err
	}
	return &MatchDetail{
		Match:  match,
		Movie:  &MovieDetail{Movie: movie, Services: services},
		Friend: friend,
	}, nil
}
