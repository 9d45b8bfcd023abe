package redis

import (
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// TMDB响应缓存：热门影片分页结果短暂缓存，减少对外部API的重复请求
const (
	tmdbPopularKeyPrefix = "mt:tmdb:popular:page:"
	tmdbPopularTTL       = time.Hour
)

// GetCachedPopularPage 读取缓存的热门影片页（未命中返回空串）
func GetCachedPopularPage(page int) (string, error) {
	if client == nil {
		return "", nil
	}
	data, err := Get(fmt.Sprintf("%s%d", tmdbPopularKeyPrefix, page))
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	return data, err
}

// CachePopularPage 缓存热门影片页原始JSON
func CachePopularPage(page int, raw string) error {
	if client == nil {
		return nil
	}
	return Set(fmt.Sprintf("%s%d", tmdbPopularKeyPrefix, page), raw, tmdbPopularTTL)
}
