package handler

import (
	"strconv"

	"movie-tinder/internal/service"
	"movie-tinder/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler TMDB同步管理接口
type AdminHandler struct {
	tmdb *service.TMDBService
}

func NewAdminHandler(tmdb *service.TMDBService) *AdminHandler {
	return &AdminHandler{tmdb: tmdb}
}

// SyncMovieByID 按TMDB影片ID同步一部影片
func (h *AdminHandler) SyncMovieByID(c *gin.Context) {
	tmdbID, err := strconv.ParseInt(c.Param("tmdb_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "TMDB影片ID无效")
		return
	}

	movie, err := h.tmdb.SyncMovieByTMDBID(c.Request.Context(), tmdbID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, &response.SyncMovieResponse{
		Message: "影片同步完成",
		MovieID: movie.ID,
		Title:   movie.Title,
	})
}

// SyncMovieByTitle 按片名搜索TMDB并同步第一个结果
func (h *AdminHandler) SyncMovieByTitle(c *gin.Context) {
	type req struct {
		Title string `json:"title" binding:"required"`
		Year  *int   `json:"year"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	movie, err := h.tmdb.SyncMovieByTitle(c.Request.Context(), r.Title, r.Year)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, &response.SyncMovieResponse{
		Message: "影片同步完成",
		MovieID: movie.ID,
		Title:   movie.Title,
	})
}

// LoadMoreMovies 拉取TMDB热门影片入库
func (h *AdminHandler) LoadMoreMovies(c *gin.Context) {
	pages, _ := strconv.Atoi(c.DefaultQuery("pages", "1"))

	added, err := h.tmdb.LoadPopularMovies(c.Request.Context(), pages)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, &response.LoadMoreMoviesResponse{
		Added:   added,
		Message: "热门影片拉取完成",
	})
}
