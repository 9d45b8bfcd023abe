package service_test

import (
	"testing"
	"time"

	"movie-tinder/config"
	"movie-tinder/internal/model"
	"movie-tinder/internal/repository"
	"movie-tinder/internal/service"
	"movie-tinder/pkg/jwt"
	"movie-tinder/pkg/websocket"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := database.AutoMigrate(
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
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "movie-tinder-test",
	})
}

type testStack struct {
	db       *gorm.DB
	manager  *websocket.Manager
	users    *service.UserService
	friends  *service.FriendService
	movies   *service.MovieService
	swipes   *service.SwipeService
	matches  *service.MatchService
	sessions *service.WatchSessionService
}

func setupStack(t *testing.T) *testStack {
	t.Helper()
	db := setupTestDB(t)

	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	swipeRepo := repository.NewSwipeRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	sessionRepo := repository.NewWatchSessionRepository(db)

	manager := websocket.NewManager()
	notifier := websocket.NewMatchNotifier(manager)

	return &testStack{
		db:       db,
		manager:  manager,
		users:    service.NewUserService(userRepo, testJWTService()),
		friends:  service.NewFriendService(userRepo, friendRepo),
		movies:   service.NewMovieService(movieRepo),
		swipes:   service.NewSwipeService(db, userRepo, movieRepo, swipeRepo, friendRepo, matchRepo, notifier),
		matches:  service.NewMatchService(matchRepo, userRepo, movieRepo),
		sessions: service.NewWatchSessionService(sessionRepo, userRepo, friendRepo),
	}
}

func (s *testStack) createUser(t *testing.T, username string) *model.User {
	t.Helper()
	user, _, err := s.users.CreateUser(username)
	if err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func (s *testStack) createMovie(t *testing.T, title string) *model.Movie {
	t.Helper()
	detail, err := s.movies.CreateMovie(&model.Movie{Title: title, Genre: "Drama"}, nil)
	if err != nil {
		t.Fatalf("failed to create movie %s: %v", title, err)
	}
	return detail.Movie
}

// makeFriends runs the full invite-code request/accept flow
func (s *testStack) makeFriends(t *testing.T, a, b *model.User) {
	t.Helper()
	detail, err := s.friends.SendRequestByInviteCode(a.ID, b.InviteCode)
	if err != nil {
		t.Fatalf("failed to send friend request: %v", err)
	}
	if _, err := s.friends.AcceptRequest(detail.Request.ID, b.ID); err != nil {
		t.Fatalf("failed to accept friend request: %v", err)
	}
}
