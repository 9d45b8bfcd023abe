package service

import (
	"movie-tinder/internal/model"
	"movie-tinder/internal/repository"
)

// MovieDetail 影片及其上架平台
type MovieDetail struct {
	Movie    *model.Movie
	Services []*model.StreamingService
}

// MovieService 影片业务逻辑
type MovieService struct {
	movies *repository.MovieRepository
}

// NewMovieService 创建MovieService实例
func NewMovieService(movies *repository.MovieRepository) *MovieService {
	return &MovieService{movies: movies}
}

// CreateMovie 创建影片并登记上架平台
func (s *MovieService) CreateMovie(movie *model.Movie, serviceNames []string) (*MovieDetail, error) {
	if err := s.movies.Create(movie); err != nil {
		return nil, err
	}

	if len(serviceNames) > 0 {
		if err := s.attachServices(movie.ID, serviceNames); err != nil {
			return nil, err
		}
	}

	services, err := s.movies.GetServicesForMovie(movie.ID)
	if err != nil {
		return nil, err
	}
	return &MovieDetail{Movie: movie, Services: services}, nil
}

// GetMovie 获取影片及其上架平台
func (s *MovieService) GetMovie(id uint) (*MovieDetail, error) {
	movie, err := s.movies.GetByID(id)
	if err != nil {
		return nil, err
	}
	services, err := s.movies.GetServicesForMovie(movie.ID)
	if err != nil {
		return nil, err
	}
	return &MovieDetail{Movie: movie, Services: services}, nil
}

// ListMovies 列出影片，排除用户已滑过的，支持平台过滤
// currentUserID 为0时不排除
func (s *MovieService) ListMovies(currentUserID uint, serviceNames []string, offset, limit int) ([]*MovieDetail, error) {
	if limit <= 0 {
		limit = 20
	}

	movies, err := s.movies.List(currentUserID, serviceNames, offset, limit)
	if err != nil {
		return nil, err
	}

	details := make([]*MovieDetail, 0, len(movies))
	for _, m := range movies {
		services, err := s.movies.GetServicesForMovie(m.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, &MovieDetail{Movie: m, Services: services})
	}
	return details, nil
}

// ListStreamingServices 列出全部流媒体平台
func (s *MovieService) ListStreamingServices() ([]*model.StreamingService, error) {
	return s.movies.ListStreamingServices()
}

func (s *MovieService) attachServices(movieID uint, serviceNames []string) error {
	ids := make([]uint, 0, len(serviceNames))
	for _, name := range serviceNames {
		svc, err := s.movies.GetOrCreateStreamingService(name)
		if err != nil {
			return err
		}
		ids = append(ids, svc.ID)
	}
	return s.movies.ReplaceMovieServices(movieID, ids)
}
