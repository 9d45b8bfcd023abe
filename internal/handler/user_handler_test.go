package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movie-tinder/config"
	"movie-tinder/internal/handler"
	"movie-tinder/internal/model"
	"movie-tinder/internal/repository"
	"movie-tinder/internal/service"
	"movie-tinder/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func setupUserRouter(t *testing.T) (*gin.Engine, *service.UserService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	jwtSvc := jwt.NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "movie-tinder-test",
	})
	userSvc := service.NewUserService(repository.NewUserRepository(db), jwtSvc)
	h := handler.NewUserHandler(userSvc)

	router := gin.New()
	router.GET("/api/users/:id", h.Get)
	return router, userSvc
}

func TestGetUserByNumericID(t *testing.T) {
	router, users := setupUserRouter(t)
	created, _, err := users.CreateUser("alice")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/users/%d", created.ID), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestGetUserByUsernamePath(t *testing.T) {
	router, users := setupUserRouter(t)
	_, _, err := users.CreateUser("alice")
	require.NoError(t, err)

	// the path segment also accepts a username
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/alice", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
	assert.Contains(t, w.Body.String(), `"invite_code"`)
}

func TestGetUnknownUserNotFound(t *testing.T) {
	router, _ := setupUserRouter(t)

	for _, path := range []string{"/api/users/9999", "/api/users/ghost"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code, "path=%s", path)
	}
}
