package repository

import (
	"errors"

	"movie-tinder/internal/model"
	"movie-tinder/pkg/errs"

	"gorm.io/gorm"
)

// MovieRepository 影片与流媒体平台数据仓储
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository 创建MovieRepository实例
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// Create 创建影片
func (r *MovieRepository) Create(movie *model.Movie) error {
	return r.db.Create(movie).Error
}

// Save 保存影片全部字段
func (r *MovieRepository) Save(movie *model.Movie) error {
	return r.db.Save(movie).Error
}

// GetByID 根据ID获取影片
func (r *MovieRepository) GetByID(id uint) (*model.Movie, error) {
	var m model.Movie
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("movie %d", id)
		}
		return nil, err
	}
	return &m, nil
}

// GetByTMDBID 根据TMDB影片ID获取影片，不存在时返回 (nil, nil)
func (r *MovieRepository) GetByTMDBID(tmdbID int64) (*model.Movie, error) {
	var m model.Movie
	err := r.db.Where("tmdb_id = ?", tmdbID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindByTitle 按片名精确查找，不存在时返回 (nil, nil)
func (r *MovieRepository) FindByTitle(title string) (*model.Movie, error) {
	var m model.Movie
	err := r.db.Where("title = ?", title).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List 列出影片，排除用户已滑过的，支持按平台名过滤
// serviceNames 为空时不过滤平台
func (r *MovieRepository) List(excludeUserID uint, serviceNames []string, offset, limit int) ([]*model.Movie, error) {
	query := r.db.Model(&model.Movie{})

	if excludeUserID > 0 {
		query = query.Where(
			"id NOT IN (?)",
			r.db.Model(&model.Swipe{}).Select("movie_id").Where("user_id = ?", excludeUserID),
		)
	}

	if len(serviceNames) > 0 {
		query = query.Where(
			"id IN (?)",
			r.db.Model(&model.MovieStreamingService{}).
				Select("movie_streaming_service.movie_id").
				Joins("JOIN streaming_service ON streaming_service.id = movie_streaming_service.streaming_service_id").
				Where("streaming_service.name IN ?", serviceNames),
		)
	}

	var movies []*model.Movie
	err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&movies).Error
	return movies, err
}

// CountAll 影片总数
func (r *MovieRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Movie{}).Count(&count).Error
	return count, err
}

// ListStreamingServices 列出全部流媒体平台
func (r *MovieRepository) ListStreamingServices() ([]*model.StreamingService, error) {
	var services []*model.StreamingService
	err := r.db.Order("name ASC").Find(&services).Error
	return services, err
}

// GetOrCreateStreamingService 按名称获取平台，不存在时创建
func (r *MovieRepository) GetOrCreateStreamingService(name string) (*model.StreamingService, error) {
	var svc model.StreamingService
	err := r.db.Where("name = ?", name).First(&svc).Error
	if err == nil {
		return &svc, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	svc = model.StreamingService{Name: name}
	if err := r.db.Create(&svc).Error; err != nil {
		// 并发创建同名平台时回查一次
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err2 := r.db.Where("name = ?", name).First(&svc).Error; err2 == nil {
				return &svc, nil
			}
		}
		return nil, err
	}
	return &svc, nil
}

// GetServicesForMovie 获取影片上架的全部平台
func (r *MovieRepository) GetServicesForMovie(movieID uint) ([]*model.StreamingService, error) {
	var services []*model.StreamingService
	err := r.db.Model(&model.StreamingService{}).
		Joins("JOIN movie_streaming_service ON movie_streaming_service.streaming_service_id = streaming_service.id").
		Where("movie_streaming_service.movie_id = ?", movieID).
		Order("streaming_service.name ASC").
		Find(&services).Error
	return services, err
}

// ReplaceMovieServices 用给定平台集合替换影片的上架关系
func (r *MovieRepository) ReplaceMovieServices(movieID uint, serviceIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", movieID).
			Delete(&model.MovieStreamingService{}).Error; err != nil {
			return err
		}
		for _, sid := range serviceIDs {
			link := model.MovieStreamingService{MovieID: movieID, StreamingServiceID: sid}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
