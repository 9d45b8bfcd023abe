package handler

import (
	"encoding/json"
	"strconv"
	"strings"

	"movie-tinder/internal/model"
	"movie-tinder/internal/service"
	"movie-tinder/pkg/jwt"
	"movie-tinder/pkg/response"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	movies *service.MovieService
	users  *service.UserService
}

func NewMovieHandler(movies *service.MovieService, users *service.UserService) *MovieHandler {
	return &MovieHandler{movies: movies, users: users}
}

// Create 创建影片
func (h *MovieHandler) Create(c *gin.Context) {
	type req struct {
		Title             string   `json:"title" binding:"required"`
		Genre             string   `json:"genre"`
		Rating            string   `json:"rating"`
		Description       string   `json:"description"`
		PosterURL         string   `json:"poster_url"`
		ReleaseYear       *int     `json:"release_year"`
		IMDBRating        string   `json:"imdb_rating"`
		StreamingServices []string `json:"streaming_services"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	movie := &model.Movie{
		Title:       r.Title,
		Genre:       r.Genre,
		Rating:      r.Rating,
		Description: r.Description,
		PosterURL:   r.PosterURL,
		ReleaseYear: r.ReleaseYear,
		IMDBRating:  r.IMDBRating,
	}
	detail, err := h.movies.CreateMovie(movie, r.StreamingServices)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, response.FilterMovieInfo(detail.Movie, detail.Services))
}

// Get 根据ID获取影片
func (h *MovieHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "影片ID无效")
		return
	}

	detail, err := h.movies.GetMovie(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, response.FilterMovieInfo(detail.Movie, detail.Services))
}

// List 列出影片
// 带 current_username 时排除该用户已滑过的影片
// streaming_services 为JSON数组或逗号分隔的平台名，按平台过滤
func (h *MovieHandler) List(c *gin.Context) {
	var currentUserID uint
	username := c.Query("current_username")
	if username == "" {
		username = jwt.GetUsername(c)
	}
	if username != "" {
		user, err := h.users.GetUserByUsername(username)
		if err != nil {
			writeError(c, err)
			return
		}
		currentUserID = user.ID
	}

	serviceNames := parseServiceNames(c.Query("streaming_services"))
	offset, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	details, err := h.movies.ListMovies(currentUserID, serviceNames, offset, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	infos := make([]*response.MovieInfo, 0, len(details))
	for _, d := range details {
		infos = append(infos, response.FilterMovieInfo(d.Movie, d.Services))
	}
	response.Success(c, infos)
}

// ListStreamingServices 列出全部流媒体平台
func (h *MovieHandler) ListStreamingServices(c *gin.Context) {
	services, err := h.movies.ListStreamingServices()
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, response.FilterStreamingServices(services))
}

// parseServiceNames 解析平台过滤参数
// 兼容JSON数组（["Netflix","Hulu"]）与逗号分隔两种写法
func parseServiceNames(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var names []string
		if err := json.Unmarshal([]byte(raw), &names); err == nil {
			return names
		}
	}

	var names []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
