package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movie-tinder/config"
	"movie-tinder/internal/handler"
	"movie-tinder/internal/model"
	"movie-tinder/internal/repository"
	"movie-tinder/internal/service"
	dbPkg "movie-tinder/pkg/db"
	"movie-tinder/pkg/jwt"
	"movie-tinder/pkg/logger"
	redisPkg "movie-tinder/pkg/redis"
	"movie-tinder/pkg/response"
	"movie-tinder/pkg/tmdb"
	"movie-tinder/pkg/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	cfg := config.LoadConfig()

	// 2. 初始化日志系统
	log := logger.InitLogger(cfg.Log)
	defer log.Sync()

	log.Info("=== Movie Tinder 启动 ===")
	log.Info("服务器配置信息",
		zap.String("port", cfg.Server.Port),
		zap.String("database_host", cfg.Database.Host),
		zap.Int("database_port", cfg.Database.Port),
		zap.String("database_name", cfg.Database.Database),
		zap.Bool("tmdb_enabled", cfg.TMDB.APIKey != ""),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 初始化数据库连接
	if _, err := dbPkg.InitDB(cfg.Database); err != nil {
		log.Fatal("数据库连接失败", zap.Error(err))
	}
	defer func() {
		if err := dbPkg.CloseDB(); err != nil {
			log.Error("关闭数据库连接失败", zap.Error(err))
		}
	}()
	log.Info("数据库连接成功")

	// 3.1 自动迁移表结构
	if err := dbPkg.AutoMigrate(
		&model.User{},
		&model.FriendRequest{},
		&model.Friendship{},
		&model.Movie{},
		&model.StreamingService{},
		&model.MovieStreamingService{},
		&model.Swipe{},
		&model.Match{},
		&model.WatchSession{},
	); err != nil {
		log.Fatal("自动迁移失败", zap.Error(err))
	}
	log.Info("自动迁移完成")

	// 3.2 初始化Redis（非致命：在线状态与TMDB缓存降级为不可用）
	if err := redisPkg.InitRedis(cfg.Redis); err != nil {
		log.Warn("Redis连接失败，在线状态与缓存不可用", zap.Error(err))
	} else {
		defer redisPkg.Close()
		log.Info("Redis连接成功")
	}

	// 3.3 初始化业务服务
	jwtSvc := jwt.NewJWTService(cfg.JWT)
	db := dbPkg.GetDB()

	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	swipeRepo := repository.NewSwipeRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	sessionRepo := repository.NewWatchSessionRepository(db)

	wsManager := websocket.NewManager()
	notifier := websocket.NewMatchNotifier(wsManager)
	tmdbClient := tmdb.NewClient(cfg.TMDB)

	userSvc := service.NewUserService(userRepo, jwtSvc)
	friendSvc := service.NewFriendService(userRepo, friendRepo)
	movieSvc := service.NewMovieService(movieRepo)
	swipeSvc := service.NewSwipeService(db, userRepo, movieRepo, swipeRepo, friendRepo, matchRepo, notifier)
	matchSvc := service.NewMatchService(matchRepo, userRepo, movieRepo)
	sessionSvc := service.NewWatchSessionService(sessionRepo, userRepo, friendRepo)
	tmdbSvc := service.NewTMDBService(tmdbClient, movieRepo, cfg.TMDB.SyncInterval)

	userHandler := handler.NewUserHandler(userSvc)
	friendHandler := handler.NewFriendHandler(friendSvc, userSvc)
	movieHandler := handler.NewMovieHandler(movieSvc, userSvc)
	swipeHandler := handler.NewSwipeHandler(swipeSvc, userSvc)
	matchHandler := handler.NewMatchHandler(matchSvc, userSvc)
	sessionHandler := handler.NewWatchSessionHandler(sessionSvc, userSvc)
	adminHandler := handler.NewAdminHandler(tmdbSvc)
	wsHandler := websocket.NewHandler(wsManager, jwtSvc, cfg.WebSocket)

	// 3.4 启动TMDB周期同步（可选）
	if err := tmdbSvc.StartScheduler(); err != nil {
		log.Warn("TMDB周期同步启动失败", zap.Error(err))
	}
	defer tmdbSvc.StopScheduler()

	// 4. 设置Gin模式
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 5. 创建Gin路由
	router := gin.New()

	// 使用中间件
	router.Use(logger.LoggerMiddleware())      // 自定义日志中间件
	router.Use(logger.ErrorLoggerMiddleware()) // 错误日志中间件
	router.Use(jwtSvc.OptionalAuthMiddleware())

	// 6. 设置基础路由
	setupBasicRoutes(router, wsManager)

	// 6.1 绑定业务路由
	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.Create)
			users.GET("", userHandler.List)
			users.GET("/me", userHandler.Me)
			users.GET("/:id", userHandler.Get)
		}

		friends := api.Group("/friends")
		{
			friends.GET("", friendHandler.List)                          // 好友列表
			friends.POST("/request", friendHandler.SendRequest)          // 通过邀请码发送请求
			friends.GET("/requests", friendHandler.ListRequests)         // 待处理请求
			friends.POST("/requests/:id/accept", friendHandler.AcceptRequest)
			friends.POST("/requests/:id/reject", friendHandler.RejectRequest)
		}

		movies := api.Group("/movies")
		{
			movies.POST("", movieHandler.Create)
			movies.GET("", movieHandler.List)
			movies.GET("/:id", movieHandler.Get)
		}
		api.GET("/streaming-services", movieHandler.ListStreamingServices)
		api.POST("/load-more-movies", adminHandler.LoadMoreMovies)

		swipes := api.Group("/swipes")
		{
			swipes.POST("", swipeHandler.Create)
			swipes.GET("", swipeHandler.List)
		}

		matches := api.Group("/matches")
		{
			matches.GET("", matchHandler.List)
			matches.POST("/:id/notify", matchHandler.AcknowledgeNotification)
		}

		sessions := api.Group("/watch-sessions")
		{
			sessions.POST("", sessionHandler.Create)
			sessions.GET("", sessionHandler.List)
		}
	}

	// 管理接口：TMDB元数据同步
	admin := router.Group("/admin")
	{
		admin.POST("/sync-movie/:tmdb_id", adminHandler.SyncMovieByID)
		admin.POST("/sync-movie-by-title", adminHandler.SyncMovieByTitle)
	}

	// WebSocket路由：匹配实时推送
	router.GET("/ws/:username", wsHandler.Serve)

	// 7. 创建HTTP服务器
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 8. 启动HTTP服务器
	go func() {
		log.Info("HTTP服务器启动", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP服务器启动失败", zap.Error(err))
		}
	}()

	// 9. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP服务器关闭失败", zap.Error(err))
	}

	log.Info("服务器已安全关闭")
}

// setupBasicRoutes 设置基础路由
func setupBasicRoutes(router *gin.Engine, wsManager *websocket.Manager) {
	// 健康检查
	// 完整url为：http://localhost:8000/health
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		if err := dbPkg.HealthCheck(); err != nil {
			status = "db-down"
		}
		response.Success(c, gin.H{
			"status":         status,
			"online_clients": wsManager.OnlineCount(),
			"time":           time.Now().Format(time.RFC3339),
		})
	})

	// 根路径
	// 完整url为：http://localhost:8000/
	router.GET("/", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "欢迎使用Movie Tinder",
			"version": "1.0.0",
		})
	})
}
