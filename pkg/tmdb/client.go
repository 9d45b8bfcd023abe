package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"movie-tinder/config"
)

// Client TMDB API客户端
// 仅封装本系统用到的四个GET接口：搜索、详情、观看渠道、热门
// APIKey为空时所有方法直接返回空结果（与无网络环境兼容）

type Client struct {
	apiKey  string
	baseURL string
	region  string
	http    *http.Client
}

// MovieResult TMDB影片数据（搜索/详情/热门共用的字段子集）
type MovieResult struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	OriginalTitle string `json:"original_title"`
	Overview      string `json:"overview"`
	ReleaseDate   string `json:"release_date"`
	PosterPath    string `json:"poster_path"`
}

type searchResponse struct {
	Results []MovieResult `json:"results"`
}

type popularResponse struct {
	Results []MovieResult `json:"results"`
}

type providersResponse struct {
	Results map[string]struct {
		Flatrate []struct {
			ProviderName string `json:"provider_name"`
		} `json:"flatrate"`
	} `json:"results"`
}

// NewClient 创建TMDB客户端
func NewClient(cfg config.TMDBConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		region:  cfg.Region,
		http:    &http.Client{Timeout: timeout},
	}
}

// Enabled 是否配置了API密钥
func (c *Client) Enabled() bool { return c.apiKey != "" }

// SearchMovie 按片名（和可选年份）搜索，返回第一个结果
// 无结果或未配置密钥时返回nil
func (c *Client) SearchMovie(ctx context.Context, title string, year *int) (*MovieResult, error) {
	if !c.Enabled() {
		return nil, nil
	}

	params := url.Values{}
	params.Set("query", title)
	if year != nil {
		params.Set("year", strconv.Itoa(*year))
	}

	var resp searchResponse
	if err := c.getJSON(ctx, "/search/movie", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}
	return &resp.Results[0], nil
}

// GetMovieDetails 按TMDB影片ID获取详情
func (c *Client) GetMovieDetails(ctx context.Context, tmdbID int64) (*MovieResult, error) {
	if !c.Enabled() {
		return nil, nil
	}

	var result MovieResult
	if err := c.getJSON(ctx, fmt.Sprintf("/movie/%d", tmdbID), nil, &result); err != nil {
		return nil, err
	}
	if result.ID == 0 {
		return nil, nil
	}
	return &result, nil
}

// GetWatchProviders 获取配置地区内的订阅制观看渠道（flatrate）
// 返回规范化后的平台名列表（去重，保持顺序）
func (c *Client) GetWatchProviders(ctx context.Context, tmdbID int64) ([]string, error) {
	if !c.Enabled() {
		return nil, nil
	}

	var resp providersResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/movie/%d/watch/providers", tmdbID), nil, &resp); err != nil {
		return nil, err
	}

	region, ok := resp.Results[c.region]
	if !ok {
		return nil, nil
	}

	seen := make(map[string]bool)
	var names []string
	for _, p := range region.Flatrate {
		name := NormalizeProviderName(p.ProviderName)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names, nil
}

// GetPopularMovies 获取一页热门影片
// raw 为响应原始JSON，供调用方缓存
func (c *Client) GetPopularMovies(ctx context.Context, page int) ([]MovieResult, string, error) {
	if !c.Enabled() {
		return nil, "", nil
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	raw, err := c.getRaw(ctx, "/movie/popular", params)
	if err != nil {
		return nil, "", err
	}

	var resp popularResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, "", fmt.Errorf("decode popular response: %w", err)
	}
	return resp.Results, raw, nil
}

// ParsePopularPage 解析缓存的热门影片页JSON
func ParsePopularPage(raw string) ([]MovieResult, error) {
	var resp popularResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// PosterImageURL 由poster_path拼出完整海报地址
func PosterImageURL(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return "https://image.tmdb.org/t/p/w500" + posterPath
}

// ReleaseYear 从release_date解析年份，失败返回nil
func (r *MovieResult) ReleaseYear() *int {
	if len(r.ReleaseDate) < 4 {
		return nil
	}
	year, err := strconv.Atoi(r.ReleaseDate[:4])
	if err != nil {
		return nil
	}
	return &year
}

func (c *Client) getRaw(ctx context.Context, path string, params url.Values) (string, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("tmdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tmdb request failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	raw, err := c.getRaw(ctx, path, params)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), out)
}
