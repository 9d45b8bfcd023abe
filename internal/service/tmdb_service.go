package service

import (
	"context"
	"time"

	"movie-tinder/internal/model"
	"movie-tinder/internal/repository"
	"movie-tinder/pkg/errs"
	"movie-tinder/pkg/logger"
	"movie-tinder/pkg/redis"
	"movie-tinder/pkg/tmdb"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// TMDBService 从TMDB同步影片元数据与观看渠道
// 未配置API密钥时所有同步操作返回NotFound，不报错退出
type TMDBService struct {
	client    *tmdb.Client
	movies    *repository.MovieRepository
	interval  time.Duration
	scheduler gocron.Scheduler
}

// NewTMDBService 创建TMDBService实例
// interval 大于0时可通过 StartScheduler 启动周期同步
func NewTMDBService(client *tmdb.Client, movies *repository.MovieRepository, interval time.Duration) *TMDBService {
	return &TMDBService{client: client, movies: movies, interval: interval}
}

// Enabled 是否配置了TMDB密钥
func (s *TMDBService) Enabled() bool {
	return s.client.Enabled()
}

// SyncMovieByTMDBID 按TMDB影片ID同步，已存在则更新元数据
func (s *TMDBService) SyncMovieByTMDBID(ctx context.Context, tmdbID int64) (*model.Movie, error) {
	result, err := s.client.GetMovieDetails(ctx, tmdbID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errs.NotFound("tmdb movie %d", tmdbID)
	}
	return s.applyResult(ctx, result)
}

// SyncMovieByTitle 按片名搜索并同步第一个结果
func (s *TMDBService) SyncMovieByTitle(ctx context.Context, title string, year *int) (*model.Movie, error) {
	result, err := s.client.SearchMovie(ctx, title, year)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errs.NotFound("no tmdb result for %q", title)
	}
	return s.applyResult(ctx, result)
}

// LoadPopularMovies 拉取若干页热门影片入库，返回新增数量
// 页面结果经Redis缓存，重复拉取不会打到外部API
func (s *TMDBService) LoadPopularMovies(ctx context.Context, pages int) (int, error) {
	if !s.client.Enabled() {
		return 0, errs.NotFound("tmdb sync is not configured")
	}
	if pages <= 0 {
		pages = 1
	}

	added := 0
	for page := 1; page <= pages; page++ {
		results, err := s.popularPage(ctx, page)
		if err != nil {
			return added, err
		}

		for i := range results {
			result := &results[i]
			existing, err := s.movies.GetByTMDBID(result.ID)
			if err != nil {
				return added, err
			}
			if existing != nil {
				continue
			}
			if _, err := s.applyResult(ctx, result); err != nil {
				logger.Warn("热门影片入库失败",
					zap.Int64("tmdb_id", result.ID),
					zap.Error(err),
				)
				continue
			}
			added++
		}
	}
	return added, nil
}

// StartScheduler 启动周期性热门影片同步
// interval不大于0或未配置密钥时不启动
func (s *TMDBService) StartScheduler() error {
	if s.interval <= 0 || !s.client.Enabled() {
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			added, err := s.LoadPopularMovies(context.Background(), 1)
			if err != nil {
				logger.Warn("周期同步热门影片失败", zap.Error(err))
				return
			}
			logger.Info("周期同步热门影片完成", zap.Int("added", added))
		}),
	)
	if err != nil {
		return err
	}

	scheduler.Start()
	s.scheduler = scheduler
	logger.Info("TMDB周期同步已启动", zap.Duration("interval", s.interval))
	return nil
}

// StopScheduler 停止周期同步
func (s *TMDBService) StopScheduler() {
	if s.scheduler != nil {
		if err := s.scheduler.Shutdown(); err != nil {
			logger.Warn("停止TMDB周期同步失败", zap.Error(err))
		}
	}
}

// popularPage 取一页热门影片，优先走缓存
func (s *TMDBService) popularPage(ctx context.Context, page int) ([]tmdb.MovieResult, error) {
	cached, err := redis.GetCachedPopularPage(page)
	if err != nil {
		logger.Warn("读取热门影片缓存失败", zap.Int("page", page), zap.Error(err))
	}
	if cached != "" {
		results, err := tmdb.ParsePopularPage(cached)
		if err == nil {
			return results, nil
		}
		logger.Warn("热门影片缓存解析失败，改走API", zap.Int("page", page), zap.Error(err))
	}

	results, raw, err := s.client.GetPopularMovies(ctx, page)
	if err != nil {
		return nil, err
	}
	if raw != "" {
		if err := redis.CachePopularPage(page, raw); err != nil {
			logger.Warn("写入热门影片缓存失败", zap.Int("page", page), zap.Error(err))
		}
	}
	return results, nil
}

// applyResult 将TMDB结果写入影片表并同步观看渠道
func (s *TMDBService) applyResult(ctx context.Context, result *tmdb.MovieResult) (*model.Movie, error) {
	movie, err := s.movies.GetByTMDBID(result.ID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		movie = &model.Movie{}
	}

	tmdbID := result.ID
	movie.TMDBID = &tmdbID
	movie.Title = result.Title
	movie.OriginalTitle = result.OriginalTitle
	movie.Description = result.Overview
	movie.PosterURL = tmdb.PosterImageURL(result.PosterPath)
	movie.ReleaseYear = result.ReleaseYear()

	if movie.ID == 0 {
		err = s.movies.Create(movie)
	} else {
		err = s.movies.Save(movie)
	}
	if err != nil {
		return nil, err
	}

	s.syncProviders(ctx, movie)
	return movie, nil
}

// syncProviders 同步观看渠道，失败只记日志不影响影片本身
func (s *TMDBService) syncProviders(ctx context.Context, movie *model.Movie) {
	if movie.TMDBID == nil {
		return
	}

	names, err := s.client.GetWatchProviders(ctx, *movie.TMDBID)
	if err != nil {
		logger.Warn("获取观看渠道失败",
			zap.Uint("movie_id", movie.ID),
			zap.Error(err),
		)
		return
	}
	if len(names) == 0 {
		return
	}

	ids := make([]uint, 0, len(names))
	for _, name := range names {
		svc, err := s.movies.GetOrCreateStreamingService(name)
		if err != nil {
			logger.Warn("登记流媒体平台失败", zap.String("name", name), zap.Error(err))
			return
		}
		ids = append(ids, svc.ID)
	}
	if err := s.movies.ReplaceMovieServices(movie.ID, ids); err != nil {
		logger.Warn("更新影片上架关系失败", zap.Uint("movie_id", movie.ID), zap.Error(err))
	}
}
